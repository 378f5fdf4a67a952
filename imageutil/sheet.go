package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Tile is one captioned cell of a contact sheet.
type Tile struct {
	Caption string
	Image   *GrayImage
}

// SheetOptions controls the contact sheet layout.
type SheetOptions struct {
	// Columns per row; 0 picks 3.
	Columns int
	// Padding around every cell in pixels; 0 picks 8.
	Padding int
	// FontSize of the captions in points at 72 DPI; 0 picks 14.
	FontSize float64
}

func (o SheetOptions) withDefaults() SheetOptions {
	if o.Columns <= 0 {
		o.Columns = 3
	}
	if o.Padding <= 0 {
		o.Padding = 8
	}
	if o.FontSize <= 0 {
		o.FontSize = 14
	}
	return o
}

var (
	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

// loadCaptionFont parses the embedded Go Regular TrueType font once.
func loadCaptionFont() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = freetype.ParseFont(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// ContactSheet lays tiles out in a grid on a black background, each tile
// with its caption rendered above it. Cells are sized to the largest tile.
// Every tile must carry a non-empty image.
func ContactSheet(tiles []Tile, opts SheetOptions) (*RGBAImage, error) {
	if len(tiles) == 0 {
		return nil, errors.New("contact sheet needs at least one tile")
	}
	opts = opts.withDefaults()

	ttf, err := loadCaptionFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}

	cellW, cellH := 0, 0
	for i, t := range tiles {
		if t.Image == nil || t.Image.Width() == 0 || t.Image.Height() == 0 {
			return nil, fmt.Errorf("tile %d (%q) has no image", i, t.Caption)
		}
		cellW = max(cellW, t.Image.Width())
		cellH = max(cellH, t.Image.Height())
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	captionH := ascent + metrics.Descent.Ceil() + opts.Padding/2

	cols := min(opts.Columns, len(tiles))
	rows := (len(tiles) + cols - 1) / cols
	pitchX := cellW + 2*opts.Padding
	pitchY := cellH + captionH + 2*opts.Padding

	sheet := NewRGBAImage(cols*pitchX, rows*pitchY)
	draw.Draw(sheet.RGBA, sheet.Bounds(), image.Black, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet.RGBA)
	ctx.SetSrc(image.NewUniform(color.RGBA{R: 255, G: 220, B: 0, A: 255}))
	ctx.SetHinting(font.HintingFull)

	for i, t := range tiles {
		ox := (i%cols)*pitchX + opts.Padding
		oy := (i/cols)*pitchY + opts.Padding

		if t.Caption != "" {
			if _, err := ctx.DrawString(t.Caption, freetype.Pt(ox, oy+ascent)); err != nil {
				return nil, fmt.Errorf("failed to draw caption %q: %w", t.Caption, err)
			}
		}

		dst := image.Rect(ox, oy+captionH, ox+t.Image.Width(), oy+captionH+t.Image.Height())
		draw.Draw(sheet.RGBA, dst, t.Image.Gray, t.Image.Bounds().Min, draw.Src)
	}

	return sheet, nil
}
