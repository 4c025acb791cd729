// Package imageio loads images into grids and writes feature maps as
// grayscale PNGs.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/algo-monogenic/dsp/grid"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("imageio: empty image")

// Load opens and decodes an image file. Any format registered with the
// image package is accepted: PNG, JPEG, GIF, TIFF, BMP and WebP.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes an image from r and returns it with its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// ToGrid converts img to a single luminance channel in [0, 1].
func ToGrid(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	g, err := grid.New(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			g.Set(y-b.Min.Y, x-b.Min.X, float64(l.Y)/math.MaxUint16)
		}
	}
	return g, nil
}

// ToGray16 maps a grid with samples in [0, 1] to a 16-bit grayscale image.
// Samples outside the range are clamped. NaN becomes black.
func ToGray16(g *grid.Grid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.Cols, g.Rows))
	for y := range g.Rows {
		for x := range g.Cols {
			v := g.At(y, x)
			if math.IsNaN(v) {
				v = 0
			}
			v = math.Min(math.Max(v, 0), 1)
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(v * math.MaxUint16))})
		}
	}
	return img
}

// Scale shrinks img to at most maxWidth pixels wide, keeping its aspect
// ratio. Images that already fit, or a maxWidth <= 0, are returned as is.
func Scale(img *image.Gray16, maxWidth int) *image.Gray16 {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}

	h := max(1, int(math.Round(float64(b.Dy())*float64(maxWidth)/float64(b.Dx()))))
	dst := image.NewGray16(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WritePNG writes img to path as PNG, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return EncodePNG(f, img)
}
