package edge

import "github.com/wbrown/edgedetect/imageutil"

const (
	// MaskHigh marks an edge pixel in a mask.
	MaskHigh uint8 = 255
	// MaskLow marks a non-edge pixel in a mask.
	MaskLow uint8 = 0

	// DefaultCutoff is the threshold applied when none is given.
	DefaultCutoff = 100.0
)

// Threshold binarizes a response: a pixel becomes MaskHigh when its value
// is strictly greater than cutoff and MaskLow otherwise. NaN never passes
// the comparison and maps to MaskLow; +Inf maps to MaskHigh.
func Threshold(r Response, cutoff float64) *imageutil.GrayImage {
	width, height := r.Width(), r.Height()
	mask := imageutil.NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := mask.Gray.Pix[y*mask.Stride : y*mask.Stride+width]
		for x, v := range r[y] {
			if v > cutoff {
				row[x] = MaskHigh
			} else {
				row[x] = MaskLow
			}
		}
	}

	return mask
}

// MaskToResponse converts a mask back into a response so it can be
// thresholded again.
func MaskToResponse(mask *imageutil.GrayImage) Response {
	width, height := mask.Width(), mask.Height()
	r := NewResponse(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r[y][x] = float64(mask.GetGray(x, y))
		}
	}
	return r
}
