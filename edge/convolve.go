package edge

import (
	"fmt"

	"github.com/wbrown/edgedetect/imageutil"
)

// BorderPolicy describes how Convolve treats pixels near the image edge.
type BorderPolicy int

const (
	// BorderZero leaves every pixel whose kernel footprint falls outside
	// the image uncomputed and zero. The zero band is kernel.Offset()
	// pixels wide on each side; the output keeps the input dimensions.
	BorderZero BorderPolicy = iota
)

// Border is the policy used by Convolve and every operator built on it.
const Border = BorderZero

func (p BorderPolicy) String() string {
	switch p {
	case BorderZero:
		return "zero"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int(p))
	}
}

// checkInput reports ErrEmptyInput for a nil or zero-sized image.
func checkInput(img *imageutil.GrayImage) error {
	if img == nil || img.Gray == nil {
		return fmt.Errorf("%w: nil image", ErrEmptyInput)
	}
	if img.Width() == 0 || img.Height() == 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyInput, img.Width(), img.Height())
	}
	return nil
}

// checkKernel validates a kernel against an image it is about to be
// applied to.
func checkKernel(img *imageutil.GrayImage, k *Kernel) error {
	if k == nil {
		return fmt.Errorf("%w: nil kernel", ErrInvalidKernel)
	}
	if k.size <= 0 || k.size%2 == 0 || len(k.values) != k.size*k.size {
		return fmt.Errorf("%w: side length %d is not odd", ErrInvalidKernel, k.size)
	}
	if img.Width() < k.size || img.Height() < k.size {
		return fmt.Errorf("%w: image %dx%d, kernel %s",
			ErrInputTooSmall, img.Width(), img.Height(), k)
	}
	return nil
}

// Convolve applies kernel k to a grayscale image and returns the raw,
// unnormalized response. For every interior pixel (x, y)
//
//	out[y][x] = sum over ky, kx in [-off, off] of
//	            img(x+kx, y+ky) * k.At(ky+off, kx+off)
//
// with off = k.Offset(). Pixels closer than off to any edge are left at
// zero (BorderZero). The kernel is not flipped.
func Convolve(img *imageutil.GrayImage, k *Kernel) (Response, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}
	if err := checkKernel(img, k); err != nil {
		return nil, err
	}

	width, height := img.Width(), img.Height()
	dst := NewResponse(width, height)

	size := k.size
	offset := k.Offset()
	bounds := img.Bounds()
	base := img.PixOffset(bounds.Min.X, bounds.Min.Y)
	pix := img.Gray.Pix
	stride := img.Stride

	for y := offset; y < height-offset; y++ {
		row := dst[y]
		for x := offset; x < width-offset; x++ {
			var sum float64

			// Top-left corner of the footprint.
			origin := base + (y-offset)*stride + (x - offset)
			for ky := 0; ky < size; ky++ {
				src := pix[origin+ky*stride : origin+ky*stride+size]
				weights := k.values[ky*size : (ky+1)*size]
				for kx, w := range weights {
					sum += float64(src[kx]) * w
				}
			}

			row[x] = sum
		}
	}

	return dst, nil
}
