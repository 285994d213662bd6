// Package sharecard renders the end-of-game image players can share.
package sharecard

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Card dimensions in pixels.
const (
	Width  = 480
	Height = 320
)

const inset = 14

var (
	background = color.RGBA{0x12, 0x12, 0x12, 0xff}
	frame      = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	titleColor = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	scoreColor = color.RGBA{0x9d, 0x9d, 0x9d, 0xff}
	footColor  = color.RGBA{0x66, 0x66, 0x66, 0xff}
)

// Card is the data printed on a share image.
type Card struct {
	Score int
	Best  int
}

// FormatScore pads a score to six digits.
func FormatScore(n int) string {
	return fmt.Sprintf("%06d", n)
}

// Render draws the card.
func Render(c Card) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	panel := image.Rect(inset, inset, Width-inset, Height-inset)
	drawGradient(img, panel)
	strokeRect(img, panel, 4, frame)

	drawText(img, "BLOCKFALL", Width/2, 90, 4, titleColor)
	drawText(img, "Score "+FormatScore(c.Score), Width/2, 160, 2, scoreColor)
	drawText(img, "Best  "+FormatScore(c.Best), Width/2, 200, 2, scoreColor)
	drawText(img, "#Blockfall", Width/2, Height-48, 1, footColor)
	drawText(img, "offline stacks", Width/2, Height-28, 1, footColor)
	return img
}

// Encode writes the card as PNG.
func Encode(w io.Writer, c Card) error {
	return png.Encode(w, Render(c))
}

// Save writes the card to dir as blockfall-<unix millis>.png and returns the
// file path.
func Save(dir string, c Card, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("sharecard: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("blockfall-%d.png", now.UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("sharecard: create %s: %w", path, err)
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return "", fmt.Errorf("sharecard: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("sharecard: write %s: %w", path, err)
	}
	return path, nil
}

// drawGradient blends a vertical gradient from a faint grey to near black
// over r.
func drawGradient(img *image.RGBA, r image.Rectangle) {
	top := color.NRGBA{60, 60, 60, 64}
	bottom := color.NRGBA{18, 18, 18, 204}
	h := r.Dy() - 1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := float64(y-r.Min.Y) / float64(h)
		c := color.NRGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: lerp(top.A, bottom.A, t),
		}
		row := image.Rect(r.Min.X, y, r.Max.X, y+1)
		draw.Draw(img, row, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	src := image.NewUniform(c)
	half := width / 2
	outer := r.Inset(-half)
	inner := r.Inset(width - half)
	for _, edge := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	} {
		draw.Draw(img, edge, src, image.Point{}, draw.Src)
	}
}

// drawText renders s centred on cx with its baseline at y, enlarged by an
// integer scale.
func drawText(dst draw.Image, s string, cx, y, scale int, c color.Color) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	w := font.MeasureString(face, s).Ceil()
	h := metrics.Height.Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	x0 := cx - w*scale/2
	y0 := y - ascent*scale
	target := image.Rect(x0, y0, x0+w*scale, y0+h*scale)
	xdraw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}
