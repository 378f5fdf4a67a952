package imageutil

// CreateSolidGray creates a uniformly filled grayscale image.
func CreateSolidGray(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// CreateStepEdgeGray creates an image with a single vertical step edge:
// columns before edgeCol are low, columns from edgeCol on are high.
func CreateStepEdgeGray(width, height, edgeCol int, low, high uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := low
			if x >= edgeCol {
				v = high
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

// CreateHorizontalStepGray creates an image with a single horizontal step
// edge: rows before edgeRow are low, rows from edgeRow on are high.
func CreateHorizontalStepGray(width, height, edgeRow int, low, high uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		v := low
		if y >= edgeRow {
			v = high
		}
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

// CreateGradientGray creates a horizontal gradient from 0 to 255.
func CreateGradientGray(width, height int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*img.Stride+x] = uint8(255 * x / max(width-1, 1))
		}
	}
	return img
}

// CreateCheckerboardGray creates a black and white checkerboard for edge
// testing.
func CreateCheckerboardGray(width, height, squareSize int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

// CreateEdgeGray creates an image with sharp edges for testing edge
// detection: a white rectangle on a mid-gray background plus a black
// diagonal line.
func CreateEdgeGray(width, height int) *GrayImage {
	img := CreateSolidGray(width, height, 128)

	rx1, ry1 := width/4, height/4
	rx2, ry2 := 3*width/4, 3*height/4
	for y := ry1; y < ry2; y++ {
		for x := rx1; x < rx2; x++ {
			img.Pix[y*img.Stride+x] = 255
		}
	}

	for i := 0; i < min(width, height)/2; i++ {
		img.Pix[i*img.Stride+i] = 0
	}

	return img
}

// CountNonZero returns the number of non-zero samples in img.
func CountNonZero(img *GrayImage) int {
	n := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetGray(x, y) != 0 {
				n++
			}
		}
	}
	return n
}

// CalculateJaccardIndex calculates the Jaccard similarity between two binary edge maps.
// Returns a value between 0 (no overlap) and 1 (perfect overlap).
func CalculateJaccardIndex(edges1, edges2 *GrayImage) float64 {
	if edges1.Width() != edges2.Width() || edges1.Height() != edges2.Height() {
		return 0
	}

	width, height := edges1.Width(), edges1.Height()
	var intersection, union int

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			e1 := edges1.GetGray(x, y) > 128
			e2 := edges2.GetGray(x, y) > 128
			if e1 && e2 {
				intersection++
			}
			if e1 || e2 {
				union++
			}
		}
	}

	if union == 0 {
		return 1.0 // Both empty
	}
	return float64(intersection) / float64(union)
}
