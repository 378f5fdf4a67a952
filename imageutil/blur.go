package imageutil

import (
	"fmt"
	"math"
)

var (
	gaussian3x3 = [][]float64{
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	}

	// Approximation of Gaussian with sigma = 1.4
	gaussian5x5 = [][]float64{
		{2.0 / 159, 4.0 / 159, 5.0 / 159, 4.0 / 159, 2.0 / 159},
		{4.0 / 159, 9.0 / 159, 12.0 / 159, 9.0 / 159, 4.0 / 159},
		{5.0 / 159, 12.0 / 159, 15.0 / 159, 12.0 / 159, 5.0 / 159},
		{4.0 / 159, 9.0 / 159, 12.0 / 159, 9.0 / 159, 4.0 / 159},
		{2.0 / 159, 4.0 / 159, 5.0 / 159, 4.0 / 159, 2.0 / 159},
	}
)

// GaussianBlurGray smooths a grayscale image with a 3x3 or 5x5 Gaussian
// before edge detection. Unlike the edge operators, every pixel is
// computed: border samples are replicated outward. A size of 0 or 1
// returns an unmodified copy.
func GaussianBlurGray(img *GrayImage, size int) (*GrayImage, error) {
	switch size {
	case 0, 1:
		return img.Clone(), nil
	case 3:
		return smoothGray(img, gaussian3x3), nil
	case 5:
		return smoothGray(img, gaussian5x5), nil
	default:
		return nil, fmt.Errorf("unsupported blur size %d (want 0, 3 or 5)", size)
	}
}

// smoothGray applies a square weight matrix with border replication and
// clamps the result to [0, 255].
func smoothGray(img *GrayImage, weights [][]float64) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)

	size := len(weights)
	half := size / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64

			for ky := 0; ky < size; ky++ {
				for kx := 0; kx < size; kx++ {
					sx := clampInt(x+kx-half, 0, width-1)
					sy := clampInt(y+ky-half, 0, height-1)

					sum += float64(img.GetGray(sx, sy)) * weights[ky][kx]
				}
			}

			dst.Gray.Pix[y*dst.Stride+x] = clampUint8(sum)
		}
	}

	return dst
}

// clampInt clamps an integer to the given range.
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
