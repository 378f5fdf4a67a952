package edge

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wbrown/edgedetect/imageutil"
)

// Operator turns a grayscale image into an edge response field by
// combining one or more convolution passes.
//
// The set of operators is closed: Sobel, Prewitt, Laplacian, Scharr and
// Kirsch.
type Operator interface {
	// Name returns a short identifier such as "prewitt" or "laplacian3".
	Name() string
	// Apply computes the operator's response over img.
	Apply(img *imageutil.GrayImage) (Response, error)
}

// Axis selects which Sobel gradient is reported.
type Axis int

const (
	// AxisVertical reports the absolute Sobel-Y response.
	AxisVertical Axis = iota
	// AxisHorizontal reports the absolute Sobel-X response.
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Sobel reports the absolute response of a single Sobel kernel.
//
// AxisHorizontal selects the Sobel-X kernel (which responds to vertical
// edges) and AxisVertical the Sobel-Y kernel. The pairing is kept as it
// has always been exposed to callers.
type Sobel struct {
	Axis Axis
}

func (s Sobel) Name() string {
	return "sobel-" + s.Axis.String()
}

func (s Sobel) Apply(img *imageutil.GrayImage) (Response, error) {
	k := sobelY
	if s.Axis == AxisHorizontal {
		k = sobelX
	}
	g, err := Convolve(img, k)
	if err != nil {
		return nil, err
	}
	absInPlace(g)
	return g, nil
}

// Prewitt reports the gradient magnitude sqrt(Gx² + Gy²) of the Prewitt
// kernel pair.
type Prewitt struct{}

func (Prewitt) Name() string { return "prewitt" }

func (Prewitt) Apply(img *imageutil.GrayImage) (Response, error) {
	return gradientMagnitude(img, prewittX, prewittY)
}

// Scharr reports the gradient magnitude sqrt(Gx² + Gy²) of the Scharr
// kernel pair.
type Scharr struct{}

func (Scharr) Name() string { return "scharr" }

func (Scharr) Apply(img *imageutil.GrayImage) (Response, error) {
	return gradientMagnitude(img, scharrX, scharrY)
}

// Laplacian reports the raw response of a generated Size x Size Laplacian
// kernel. The response is signed. A zero Size means DefaultLaplacianSize.
type Laplacian struct {
	Size int
}

func (l Laplacian) size() int {
	if l.Size == 0 {
		return DefaultLaplacianSize
	}
	return l.Size
}

func (l Laplacian) Name() string {
	return "laplacian" + strconv.Itoa(l.size())
}

func (l Laplacian) Apply(img *imageutil.GrayImage) (Response, error) {
	k, err := LaplacianKernel(l.size())
	if err != nil {
		return nil, err
	}
	return Convolve(img, k)
}

// Kirsch reports, per pixel, the largest absolute response over the eight
// Kirsch compass kernels.
type Kirsch struct{}

func (Kirsch) Name() string { return "kirsch" }

func (Kirsch) Apply(img *imageutil.GrayImage) (Response, error) {
	return maxAbsResponse(img, kirschBank[:])
}

// gradientMagnitude convolves img with kx and ky and combines the two
// passes into sqrt(Gx² + Gy²).
func gradientMagnitude(img *imageutil.GrayImage, kx, ky *Kernel) (Response, error) {
	gx, err := Convolve(img, kx)
	if err != nil {
		return nil, err
	}
	gy, err := Convolve(img, ky)
	if err != nil {
		return nil, err
	}
	for y := range gx {
		for x := range gx[y] {
			gx[y][x] = math.Sqrt(gx[y][x]*gx[y][x] + gy[y][x]*gy[y][x])
		}
	}
	return gx, nil
}

// maxAbsResponse convolves img with every kernel in bank and keeps the
// largest absolute value at each pixel.
func maxAbsResponse(img *imageutil.GrayImage, bank []*Kernel) (Response, error) {
	var out Response
	for _, k := range bank {
		r, err := Convolve(img, k)
		if err != nil {
			return nil, err
		}
		if out == nil {
			absInPlace(r)
			out = r
			continue
		}
		for y := range r {
			for x, v := range r[y] {
				if a := math.Abs(v); a > out[y][x] {
					out[y][x] = a
				}
			}
		}
	}
	return out, nil
}

func absInPlace(r Response) {
	for y := range r {
		for x, v := range r[y] {
			r[y][x] = math.Abs(v)
		}
	}
}

// Operators returns the canonical operator set in display order: Sobel
// vertical, Sobel horizontal, Prewitt, Laplacian of the given size, Scharr
// and Kirsch.
func Operators(laplacianSize int) []Operator {
	return []Operator{
		Sobel{Axis: AxisVertical},
		Sobel{Axis: AxisHorizontal},
		Prewitt{},
		Laplacian{Size: laplacianSize},
		Scharr{},
		Kirsch{},
	}
}

// Title returns a human-readable caption for op.
func Title(op Operator) string {
	switch o := op.(type) {
	case Sobel:
		return "Sobel - " + o.Axis.String()
	case Prewitt:
		return "Prewitt"
	case Laplacian:
		return fmt.Sprintf("Laplacian - %dx%d", o.size(), o.size())
	case Scharr:
		return "Scharr"
	case Kirsch:
		return "Kirsch"
	default:
		return op.Name()
	}
}

// ParseOperator maps a name to an operator. Accepted names are
// "sobel-vertical", "sobel-horizontal", "prewitt", "scharr", "kirsch",
// "laplacian" (which uses laplacianSize) and "laplacianN" for an explicit
// kernel size N. Matching is case-insensitive.
func ParseOperator(name string, laplacianSize int) (Operator, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "sobel-vertical", "sobel-v":
		return Sobel{Axis: AxisVertical}, nil
	case "sobel-horizontal", "sobel-h":
		return Sobel{Axis: AxisHorizontal}, nil
	case "prewitt":
		return Prewitt{}, nil
	case "scharr":
		return Scharr{}, nil
	case "kirsch":
		return Kirsch{}, nil
	case "laplacian":
		return Laplacian{Size: laplacianSize}, nil
	}

	if rest, ok := strings.CutPrefix(n, "laplacian"); ok {
		size, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
		}
		if _, err := LaplacianKernel(size); err != nil {
			return nil, err
		}
		return Laplacian{Size: size}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}
