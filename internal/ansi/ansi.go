// Package ansi renders card images as terminal art. Each character cell
// covers a 2x2 block of the scaled image: the top pixel pair becomes the
// foreground of an upper-half-block glyph and the bottom pair its
// background, drawn with 24-bit color escapes.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Render scales img to the given number of terminal columns and returns it
// as ANSI art. The number of rows follows the image aspect ratio, halved
// because each character cell stacks two pixel rows.
func Render(img image.Image, cols int) string {
	if cols < 1 {
		cols = 1
	}
	bounds := img.Bounds()
	rows := cols * bounds.Dy() / bounds.Dx() / 2
	if rows < 1 {
		rows = 1
	}

	// Resize to double resolution so every character cell owns a 2x2 block
	resized := resize.Resize(uint(cols*2), uint(rows*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < rows*2; y += 2 {
		for x := 0; x < cols*2; x += 2 {
			c1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			c2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := averageColor(c1, c2)
			bg := averageColor(c3, c4)

			buffer.WriteString(cell(fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate, treating
// out-of-bounds pixels as black
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// cell formats one upper-half-block character with truecolor foreground
// and background codes
func cell(fg, bg colorful.Color) string {
	fr, fgr, fb := fg.RGB255()
	br, bgr, bb := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
		fr, fgr, fb, br, bgr, bb)
}
