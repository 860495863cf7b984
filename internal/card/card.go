// Package card renders keyword bingo cards. A card is a rows-by-cols grid
// of square tiles: every tile but one carries a phrase drawn from a
// shuffled word list, wrapped and shrunk to fit, and the center tile
// carries a decorative star. A provenance footer (seed, word-list checksum)
// is stamped in the bottom-left corner so any card can be regenerated.
//
// Generation is pure: the same words, seed and options always produce the
// same image, byte for byte. A Generator is immutable after construction
// and safe for concurrent use; each call owns its canvases, font faces and
// random stream.
package card

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Default geometry and type sizes, matching a 200-pixel tile.
const (
	DefaultSize           = 200
	DefaultPadding        = 5
	DefaultFontSize       = 25
	DefaultMinFontSize    = 8
	DefaultFooterFontSize = 12
)

// Palette is the set of colors a card is drawn with.
type Palette struct {
	Background color.Color
	Text       color.Color
	Star       color.Color
	Border     color.Color
	Footer     color.Color
}

// DefaultPalette returns the classic look: black text and borders on white,
// a gold star, and a gray footer.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Text:       color.Black,
		Star:       color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
		Border:     color.Black,
		Footer:     color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// Options configures a Generator. The zero value of any field is replaced
// with the matching default, so callers only set what they change.
type Options struct {
	// Size is the pixel width and height of one tile.
	Size int
	// Padding is the gap kept between tile content and the tile edge.
	Padding int
	// FontSize is the starting point size for tile text.
	FontSize int
	// MinFontSize is the floor of the shrink-to-fit loop. Text that still
	// overflows at this size is clipped by the tile bounds.
	MinFontSize int
	// FooterFontSize is the fixed point size of the provenance footer.
	FooterFontSize int
	// Palette supplies the card colors; nil entries fall back to
	// DefaultPalette.
	Palette Palette
	// Font is the parsed font used for all text. Nil selects the embedded
	// Go Regular face.
	Font *opentype.Font
}

// DefaultOptions returns Options with every field populated.
func DefaultOptions() Options {
	return Options{
		Size:           DefaultSize,
		Padding:        DefaultPadding,
		FontSize:       DefaultFontSize,
		MinFontSize:    DefaultMinFontSize,
		FooterFontSize: DefaultFooterFontSize,
		Palette:        DefaultPalette(),
	}
}

// Request describes one card to generate.
type Request struct {
	// Words is the pool of phrases to draw from. It must hold at least
	// Rows*Cols entries and is never mutated.
	Words []string
	// Rows and Cols give the grid shape.
	Rows int
	Cols int
	// Seed is the raw seed as the user supplied it. Empty means "surprise
	// me": a seed is synthesized from the clock and reported in the result
	// and the footer so the card can still be reproduced.
	Seed string
	// Checksum identifies the word list (an MD5 hex digest from the
	// loader). When set it is appended to the footer.
	Checksum string
	// QR adds a small QR code of the footer text inside the bottom-right
	// corner, for scanning a card's provenance off a printout.
	QR bool
}

// Result is a generated card.
type Result struct {
	// Image is the composed card, (Cols*Size) x (Rows*Size) pixels.
	Image image.Image
	// Grid is the layout the image was rendered from.
	Grid *Grid
	// Seed is the canonicalized seed the shuffle actually used.
	Seed int64
	// Footer is the provenance line stamped on the card.
	Footer string
}

// Generator renders cards for one fixed set of options.
type Generator struct {
	opts Options
	font *opentype.Font
}

// NewGenerator builds a Generator, filling zero Options fields with
// defaults and parsing the embedded Go Regular font when no font is given.
func NewGenerator(opts Options) (*Generator, error) {
	def := DefaultOptions()
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.Padding <= 0 {
		opts.Padding = def.Padding
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = def.MinFontSize
	}
	if opts.FooterFontSize <= 0 {
		opts.FooterFontSize = def.FooterFontSize
	}
	if opts.Palette.Background == nil {
		opts.Palette.Background = def.Palette.Background
	}
	if opts.Palette.Text == nil {
		opts.Palette.Text = def.Palette.Text
	}
	if opts.Palette.Star == nil {
		opts.Palette.Star = def.Palette.Star
	}
	if opts.Palette.Border == nil {
		opts.Palette.Border = def.Palette.Border
	}
	if opts.Palette.Footer == nil {
		opts.Palette.Footer = def.Palette.Footer
	}

	f := opts.Font
	if f == nil {
		parsed, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("error parsing embedded font: %v", err)
		}
		f = parsed
	}

	return &Generator{opts: opts, font: f}, nil
}

// Options returns a copy of the generator's effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate runs the whole pipeline for one request: resolve the seed,
// build the grid, render every tile, and stamp the provenance footer
// (and QR code, when asked). A failed request returns no partial card.
func (g *Generator) Generate(req Request) (*Result, error) {
	seedText := req.Seed
	seed := ResolveSeed(req.Seed)
	if seedText == "" {
		seedText = strconv.FormatInt(seed, 10)
	}

	grid, err := NewGrid(req.Words, req.Rows, req.Cols, seed)
	if err != nil {
		return nil, err
	}

	footer := "seed: " + seedText
	if req.Checksum != "" {
		footer += " md5: " + req.Checksum
	}

	img, err := g.Render(grid, footer)
	if err != nil {
		return nil, err
	}

	if req.QR {
		img, err = g.stampQR(img, footer)
		if err != nil {
			return nil, err
		}
	}

	return &Result{Image: img, Grid: grid, Seed: seed, Footer: footer}, nil
}

// Render composites a grid into a single card image and, when footer is
// non-empty, stamps it in the bottom-left corner: left edge one padding in
// from the canvas edge, text resting one padding above the bottom. Tiles
// are rendered and pasted in the grid's column-major order, each at pixel
// offset (col*Size, row*Size).
func (g *Generator) Render(grid *Grid, footer string) (image.Image, error) {
	canvas := imaging.New(grid.Cols*g.opts.Size, grid.Rows*g.opts.Size, g.opts.Palette.Background)

	for col := 0; col < grid.Cols; col++ {
		for row := 0; row < grid.Rows; row++ {
			var tile *image.NRGBA
			if cell := grid.Cells[col][row]; cell.Star {
				tile = g.starTile()
			} else {
				t, err := g.textTile(cell.Word)
				if err != nil {
					return nil, err
				}
				tile = t
			}
			canvas = imaging.Paste(canvas, tile, image.Pt(col*g.opts.Size, row*g.opts.Size))
		}
	}

	if footer != "" {
		if err := g.drawFooter(canvas, footer); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// drawFooter writes the provenance line over the finished tiles; it is
// always the last draw on the canvas.
func (g *Generator) drawFooter(canvas *image.NRGBA, text string) error {
	face, err := g.newFace(g.opts.FooterFontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	baseline := canvas.Bounds().Dy() - g.opts.Padding - face.Metrics().Descent.Ceil()
	drawer := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(g.opts.Palette.Footer),
		Face: face,
		Dot:  fixed.P(g.opts.Padding, baseline),
	}
	drawer.DrawString(text)
	return nil
}

// stampQR pastes a QR code of the provenance text one padding inside the
// bottom-right corner.
func (g *Generator) stampQR(img image.Image, payload string) (image.Image, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("error encoding provenance qr: %v", err)
	}
	qr.DisableBorder = true

	side := g.opts.Size / 2
	b := img.Bounds()
	pos := image.Pt(b.Dx()-g.opts.Padding-side, b.Dy()-g.opts.Padding-side)
	return imaging.Paste(img, qr.Image(side), pos), nil
}
