// Package imageutil provides the image plumbing around the edge package:
// 8-bit gray and RGBA image wrappers, decoding and encoding, grayscale
// conversion, resizing, pre-blur, test patterns and contact sheets.
package imageutil

import (
	"fmt"
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage with its origin
// moved to (0, 0).
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// GrayImage wraps image.Gray. It is the sample grid fed to the edge
// operators and the type of the binary masks they produce.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// GrayImageFromPix creates a GrayImage from row-major samples. The samples
// are copied.
func GrayImageFromPix(width, height int, pix []uint8) (*GrayImage, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d",
			len(pix), width, height)
	}
	img := NewGrayImage(width, height)
	copy(img.Pix, pix)
	return img, nil
}

// GrayImageFromRows creates a GrayImage from a slice of equal-length rows.
func GrayImageFromRows(rows [][]uint8) (*GrayImage, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	img := NewGrayImage(width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d samples, want %d", y, len(row), width)
		}
		copy(img.Pix[y*img.Stride:], row)
	}
	return img, nil
}

// GrayImageFromImage converts any image.Image to GrayImage with its origin
// moved to (0, 0). Color images go through the standard library's gray
// color model.
func GrayImageFromImage(img image.Image) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y) relative to the image
// origin.
func (img *GrayImage) GetGray(x, y int) uint8 {
	b := img.Bounds()
	return img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
}

// SetGrayValue sets the grayscale value at (x, y) relative to the image
// origin.
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	b := img.Bounds()
	img.Gray.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
}

// Clone creates a deep copy of the image with its origin at (0, 0).
func (img *GrayImage) Clone() *GrayImage {
	width, height := img.Width(), img.Height()
	clone := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		off := img.PixOffset(img.Bounds().Min.X, img.Bounds().Min.Y+y)
		copy(clone.Pix[y*clone.Stride:y*clone.Stride+width], img.Pix[off:off+width])
	}
	return clone
}

// Equal reports whether two gray images have the same dimensions and
// samples.
func (img *GrayImage) Equal(other *GrayImage) bool {
	if img.Width() != other.Width() || img.Height() != other.Height() {
		return false
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetGray(x, y) != other.GetGray(x, y) {
				return false
			}
		}
	}
	return true
}
