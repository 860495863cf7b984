package card

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// starPoints is the number of spikes on the decorative center star.
const starPoints = 5

// textTile renders one bordered square tile with the phrase wrapped,
// auto-shrunk and centered: the line block is centered vertically, each
// line horizontally, and a line's left edge never starts inside the
// padding even when a single unbroken token is wider than the tile.
func (g *Generator) textTile(text string) (*image.NRGBA, error) {
	fit, err := g.fitText(text)
	if err != nil {
		return nil, err
	}
	defer fit.face.Close()

	img := g.blankTile()
	y := (g.opts.Size - len(fit.lines)*fit.lineHeight) / 2
	for _, line := range fit.lines {
		width := font.MeasureString(fit.face, line).Ceil()
		x := (g.opts.Size - width) / 2
		if x < g.opts.Padding {
			x = g.opts.Padding
		}
		drawer := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(g.opts.Palette.Text),
			Face: fit.face,
			Dot:  fixed.P(x, y+fit.ascent),
		}
		drawer.DrawString(line)
		y += fit.lineHeight
	}

	drawBorder(img, g.opts.Palette.Border)
	return img, nil
}

// starTile renders the decorative center tile: a filled 5-point star whose
// vertices alternate between the outer radius (half the tile minus padding)
// and half that, stepping 36 degrees per vertex from angle zero.
func (g *Generator) starTile() *image.NRGBA {
	img := g.blankTile()

	center := float64(g.opts.Size / 2)
	outer := float64(g.opts.Size/2 - g.opts.Padding)
	inner := outer / 2
	step := 2 * math.Pi / (starPoints * 2)

	z := vector.NewRasterizer(g.opts.Size, g.opts.Size)
	for i := 0; i < starPoints*2; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := step * float64(i)
		x := float32(center + radius*math.Cos(angle))
		y := float32(center - radius*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(g.opts.Palette.Star), image.Point{})

	drawBorder(img, g.opts.Palette.Border)
	return img
}

// blankTile returns a tile-sized canvas filled with the background color.
func (g *Generator) blankTile() *image.NRGBA {
	return imaging.New(g.opts.Size, g.opts.Size, g.opts.Palette.Background)
}

// drawBorder traces a one-pixel border around the image perimeter.
func drawBorder(img *image.NRGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}
