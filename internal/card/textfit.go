package card

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// textFit is the result of fitting a phrase into a tile: the wrapped lines
// and the face they were measured with. The caller owns the face and must
// close it after drawing.
type textFit struct {
	lines      []string
	face       font.Face
	size       int
	lineHeight int
	ascent     int
}

// fitText wraps text to the tile's usable width and shrinks the font until
// the wrapped block fits the usable height. Wrapping restarts from scratch
// at every size because line breaks move as glyphs get smaller.
//
// The shrink loop stops at MinFontSize. At the floor the block may be
// taller than the tile; drawing clips the overflow at the tile bounds
// rather than truncating or failing, so a pathological phrase still yields
// a card.
func (g *Generator) fitText(text string) (*textFit, error) {
	maxWidth := g.opts.Size - 2*g.opts.Padding
	maxHeight := maxWidth

	for size := g.opts.FontSize; ; size-- {
		face, err := g.newFace(size)
		if err != nil {
			return nil, err
		}

		lines := wrapText(face, text, maxWidth)
		metrics := face.Metrics()
		lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

		if len(lines)*lineHeight <= maxHeight || size <= g.opts.MinFontSize {
			return &textFit{
				lines:      lines,
				face:       face,
				size:       size,
				lineHeight: lineHeight,
				ascent:     metrics.Ascent.Ceil(),
			}, nil
		}
		face.Close()
	}
}

// wrapText splits text on existing newlines, then greedily packs words onto
// lines while the measured advance width stays within maxWidth. A word that
// would overflow starts a new line; a single word wider than maxWidth keeps
// a line to itself rather than being broken mid-word.
func wrapText(face font.Face, text string, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if font.MeasureString(face, candidate).Ceil() <= maxWidth {
				current = candidate
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// newFace creates a font face at the given point size. Faces are cheap,
// per-call objects; they are not safe for concurrent use, so every
// generation builds its own.
func (g *Generator) newFace(size int) (font.Face, error) {
	return opentype.NewFace(g.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
