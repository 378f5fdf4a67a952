package edge

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultLaplacianSize is the Laplacian kernel side used when none is given.
const DefaultLaplacianSize = 3

// Kernel is an immutable square convolution kernel with an odd side length.
// The center cell is at (Size()/2, Size()/2). Weights are applied as-is;
// no normalization is performed.
type Kernel struct {
	name   string
	size   int
	values []float64 // row-major, size*size
}

// NewKernel creates a kernel from a square 2D slice of weights. The weights
// are copied, so later changes to values do not affect the kernel.
func NewKernel(name string, values [][]float64) (*Kernel, error) {
	size := len(values)
	if size == 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: side length %d is not odd", ErrInvalidKernel, size)
	}

	flat := make([]float64, 0, size*size)
	for i, row := range values {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d weights, want %d",
				ErrInvalidKernel, i, len(row), size)
		}
		flat = append(flat, row...)
	}

	return &Kernel{name: name, size: size, values: flat}, nil
}

// mustKernel is NewKernel for the package's literal tables.
func mustKernel(name string, values [][]float64) *Kernel {
	k, err := NewKernel(name, values)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the catalog name of the kernel, e.g. "sobel-x".
func (k *Kernel) Name() string {
	return k.name
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int {
	return k.size
}

// Offset returns the distance from the center cell to the kernel edge,
// which is also the width of the uncomputed border in a response.
func (k *Kernel) Offset() int {
	return k.size / 2
}

// At returns the weight at the given row and column.
func (k *Kernel) At(row, col int) float64 {
	return k.values[row*k.size+col]
}

// Values returns a copy of the weights as a 2D slice.
func (k *Kernel) Values() [][]float64 {
	out := make([][]float64, k.size)
	for r := range out {
		out[r] = append([]float64(nil), k.values[r*k.size:(r+1)*k.size]...)
	}
	return out
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	return floats.Sum(k.values)
}

func (k *Kernel) String() string {
	return fmt.Sprintf("%s(%dx%d)", k.name, k.size, k.size)
}

// The catalog tables are built once at package initialization and never
// modified, so they can be shared by concurrent operators.
var (
	sobelX = mustKernel("sobel-x", [][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY = mustKernel("sobel-y", [][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})

	prewittX = mustKernel("prewitt-x", [][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
	prewittY = mustKernel("prewitt-y", [][]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	})

	scharrX = mustKernel("scharr-x", [][]float64{
		{-3, 0, 3},
		{-10, 0, 10},
		{-3, 0, 3},
	})
	scharrY = mustKernel("scharr-y", [][]float64{
		{-3, -10, -3},
		{0, 0, 0},
		{3, 10, 3},
	})

	// Kirsch compass kernels, N through NW clockwise.
	kirschBank = [8]*Kernel{
		mustKernel("kirsch-n", [][]float64{
			{5, 5, 5},
			{-3, 0, -3},
			{-3, -3, -3},
		}),
		mustKernel("kirsch-ne", [][]float64{
			{-3, 5, 5},
			{-3, 0, 5},
			{-3, -3, -3},
		}),
		mustKernel("kirsch-e", [][]float64{
			{-3, -3, 5},
			{-3, 0, 5},
			{-3, -3, 5},
		}),
		mustKernel("kirsch-se", [][]float64{
			{-3, -3, -3},
			{-3, 0, 5},
			{-3, 5, 5},
		}),
		mustKernel("kirsch-s", [][]float64{
			{-3, -3, -3},
			{-3, 0, -3},
			{5, 5, 5},
		}),
		mustKernel("kirsch-sw", [][]float64{
			{-3, -3, -3},
			{5, 0, -3},
			{5, 5, -3},
		}),
		mustKernel("kirsch-w", [][]float64{
			{5, -3, -3},
			{5, 0, -3},
			{5, -3, -3},
		}),
		mustKernel("kirsch-nw", [][]float64{
			{5, 5, -3},
			{5, 0, -3},
			{-3, -3, -3},
		}),
	}
)

// SobelXKernel returns the Sobel kernel that responds to intensity changes
// along x (vertical edges).
func SobelXKernel() *Kernel { return sobelX }

// SobelYKernel returns the Sobel kernel that responds to intensity changes
// along y (horizontal edges).
func SobelYKernel() *Kernel { return sobelY }

// PrewittXKernel returns the Prewitt x-gradient kernel.
func PrewittXKernel() *Kernel { return prewittX }

// PrewittYKernel returns the Prewitt y-gradient kernel.
func PrewittYKernel() *Kernel { return prewittY }

// ScharrXKernel returns the Scharr x-gradient kernel.
func ScharrXKernel() *Kernel { return scharrX }

// ScharrYKernel returns the Scharr y-gradient kernel.
func ScharrYKernel() *Kernel { return scharrY }

// KirschKernels returns the eight Kirsch compass kernels in the order
// N, NE, E, SE, S, SW, W, NW. The returned slice is a fresh copy; the
// kernels themselves are shared and immutable.
func KirschKernels() []*Kernel {
	return append([]*Kernel(nil), kirschBank[:]...)
}

// LaplacianKernel generates a size x size Laplacian kernel: every cell is
// -1 except the center, which is size*size-1, so the weights sum to zero.
// size must be odd and at least 3.
func LaplacianKernel(size int) (*Kernel, error) {
	if size < 3 || size%2 == 0 {
		return nil, fmt.Errorf("%w: laplacian size %d must be odd and >= 3",
			ErrInvalidKernel, size)
	}

	center := size / 2
	values := make([][]float64, size)
	for i := range values {
		values[i] = make([]float64, size)
		for j := range values[i] {
			if i == center && j == center {
				values[i][j] = float64(size*size - 1)
			} else {
				values[i][j] = -1
			}
		}
	}

	return NewKernel(fmt.Sprintf("laplacian-%d", size), values)
}
