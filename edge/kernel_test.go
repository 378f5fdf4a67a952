package edge

import (
	"errors"
	"testing"
)

func transpose(v [][]float64) [][]float64 {
	out := make([][]float64, len(v))
	for i := range v {
		out[i] = make([]float64, len(v))
		for j := range v {
			out[i][j] = v[j][i]
		}
	}
	return out
}

func TestNewKernel(t *testing.T) {
	values := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	k, err := NewKernel("test", values)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if k.Size() != 3 || k.Offset() != 1 {
		t.Errorf("Expected size 3 offset 1, got %d/%d", k.Size(), k.Offset())
	}
	if k.At(1, 2) != 6 {
		t.Errorf("Expected At(1,2)=6, got %v", k.At(1, 2))
	}
	if k.Sum() != 45 {
		t.Errorf("Expected sum 45, got %v", k.Sum())
	}
	if k.String() != "test(3x3)" {
		t.Errorf("Unexpected String(): %q", k.String())
	}

	// The kernel owns a copy of its weights.
	values[1][2] = 100
	if k.At(1, 2) != 6 {
		t.Error("NewKernel should copy its input")
	}
	out := k.Values()
	out[0][0] = 100
	if k.At(0, 0) != 1 {
		t.Error("Values should return a copy")
	}
}

func TestNewKernelRejects(t *testing.T) {
	tests := []struct {
		name   string
		values [][]float64
	}{
		{"empty", nil},
		{"2x2", [][]float64{{1, 1}, {1, 1}}},
		{"4x4", [][]float64{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}},
		{"not square", [][]float64{{1, 1}, {1, 1}, {1, 1}}},
		{"ragged", [][]float64{{1, 1, 1}, {1, 1}, {1, 1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKernel(tt.name, tt.values); !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("Expected ErrInvalidKernel, got %v", err)
			}
		})
	}
}

func TestGradientKernelPairs(t *testing.T) {
	pairs := []struct {
		name string
		x, y *Kernel
	}{
		{"sobel", SobelXKernel(), SobelYKernel()},
		{"prewitt", PrewittXKernel(), PrewittYKernel()},
		{"scharr", ScharrXKernel(), ScharrYKernel()},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if p.x.Size() != 3 || p.y.Size() != 3 {
				t.Fatalf("Expected 3x3 kernels, got %d and %d", p.x.Size(), p.y.Size())
			}
			if p.x.Sum() != 0 || p.y.Sum() != 0 {
				t.Errorf("Gradient kernels should sum to zero, got %v and %v", p.x.Sum(), p.y.Sum())
			}
			xt := transpose(p.x.Values())
			yv := p.y.Values()
			for i := range xt {
				for j := range xt[i] {
					if xt[i][j] != yv[i][j] {
						t.Fatalf("%s-y should be the transpose of %s-x", p.name, p.name)
					}
				}
			}
		})
	}

	if SobelXKernel().At(1, 2) != 2 || ScharrXKernel().At(1, 2) != 10 || PrewittXKernel().At(1, 2) != 1 {
		t.Error("Unexpected center-row weights in x kernels")
	}
}

func TestLaplacianKernel(t *testing.T) {
	for size := 3; size <= 15; size += 2 {
		k, err := LaplacianKernel(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if k.Size() != size {
			t.Errorf("size %d: got side %d", size, k.Size())
		}
		if k.Sum() != 0 {
			t.Errorf("size %d: expected zero sum, got %v", size, k.Sum())
		}
		c := size / 2
		if k.At(c, c) != float64(size*size-1) {
			t.Errorf("size %d: expected center %d, got %v", size, size*size-1, k.At(c, c))
		}
		if k.At(0, 0) != -1 || k.At(size-1, c) != -1 {
			t.Errorf("size %d: expected -1 off center", size)
		}
	}
}

func TestLaplacianKernelRejects(t *testing.T) {
	for _, size := range []int{-3, 0, 1, 2, 4, 6} {
		if _, err := LaplacianKernel(size); !errors.Is(err, ErrInvalidKernel) {
			t.Errorf("size %d: expected ErrInvalidKernel, got %v", size, err)
		}
	}
}

// ring lists the eight outer cells of a 3x3 kernel clockwise from the
// top-left corner.
var ring = [8][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}}

func TestKirschKernels(t *testing.T) {
	bank := KirschKernels()
	if len(bank) != 8 {
		t.Fatalf("Expected 8 Kirsch kernels, got %d", len(bank))
	}

	for i, k := range bank {
		if k.Size() != 3 {
			t.Fatalf("%s: expected 3x3, got %d", k.Name(), k.Size())
		}
		if k.At(1, 1) != 0 {
			t.Errorf("%s: expected zero center, got %v", k.Name(), k.At(1, 1))
		}
		if k.Sum() != 0 {
			t.Errorf("%s: expected zero sum, got %v", k.Name(), k.Sum())
		}
		// Kernel i has its three 5s at ring positions i, i+1, i+2: each
		// direction is the previous one rotated by 45 degrees clockwise.
		for p, cell := range ring {
			want := -3.0
			if d := (p - i + 8) % 8; d <= 2 {
				want = 5
			}
			if got := k.At(cell[0], cell[1]); got != want {
				t.Errorf("%s: cell %v = %v, want %v", k.Name(), cell, got, want)
			}
		}
	}

	wantNames := []string{"kirsch-n", "kirsch-ne", "kirsch-e", "kirsch-se",
		"kirsch-s", "kirsch-sw", "kirsch-w", "kirsch-nw"}
	for i, k := range bank {
		if k.Name() != wantNames[i] {
			t.Errorf("Kernel %d: expected %s, got %s", i, wantNames[i], k.Name())
		}
	}

	// The returned slice is a copy of the bank.
	bank[0] = nil
	if KirschKernels()[0] == nil {
		t.Error("KirschKernels should return a fresh slice")
	}
}
