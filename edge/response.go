package edge

import (
	"math"

	"github.com/wbrown/edgedetect/imageutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Response is a floating-point response field indexed [y][x]. Every
// convolution and operator returns a freshly allocated Response that
// shares no storage with its inputs.
type Response [][]float64

// NewResponse creates a zero-filled response of the given dimensions.
func NewResponse(width, height int) Response {
	backing := make([]float64, width*height)
	r := make(Response, height)
	for y := range r {
		r[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}
	return r
}

// Width returns the response width.
func (r Response) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Height returns the response height.
func (r Response) Height() int {
	return len(r)
}

// Clone creates a deep copy of the response.
func (r Response) Clone() Response {
	out := NewResponse(r.Width(), r.Height())
	for y := range r {
		copy(out[y], r[y])
	}
	return out
}

// Stats summarizes the values of a response.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
}

// Stats computes the minimum, maximum, mean and standard deviation of all
// values, border included. An empty response yields zero Stats.
func (r Response) Stats() Stats {
	if r.Width() == 0 || r.Height() == 0 {
		return Stats{}
	}
	flat := make([]float64, 0, r.Width()*r.Height())
	for _, row := range r {
		flat = append(flat, row...)
	}
	mean, std := stat.MeanStdDev(flat, nil)
	return Stats{
		Min:    floats.Min(flat),
		Max:    floats.Max(flat),
		Mean:   mean,
		StdDev: std,
	}
}

// ToGray converts the response to an 8-bit image for display, rounding and
// clamping each value to [0, 255].
func (r Response) ToGray() *imageutil.GrayImage {
	width, height := r.Width(), r.Height()
	dst := imageutil.NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Gray.Pix[y*dst.Stride+x] = clampUint8(r[y][x])
		}
	}
	return dst
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
