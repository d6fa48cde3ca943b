// Package sprite is the terminal stand-in for a GPU sprite renderer: a glyph
// atlas plays the texture, a fixed-capacity slot group holds what to draw,
// and a camera maps world units onto screen cells.
package sprite

import (
	"fmt"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/core"
)

// Transparent is the glyph that is never drawn.
const Transparent = ' '

// Page is one sheet of the atlas: a grid of glyphs with a parallel grid of
// colours.
type Page struct {
	glyphs [][]rune
	tints  [][]core.Color
	width  int
}

// NewPage builds a page from glyph rows. tints uses the same layout, each
// rune a key into palette; missing or unknown keys draw in the default colour.
func NewPage(glyphs, tints []string, palette map[rune]core.Color) Page {
	p := Page{}
	for _, row := range glyphs {
		runes := []rune(row)
		p.glyphs = append(p.glyphs, runes)
		p.width = core.Max(p.width, len(runes))
	}

	p.tints = make([][]core.Color, len(p.glyphs))
	for y := range p.glyphs {
		p.tints[y] = make([]core.Color, p.width)
		if y >= len(tints) {
			continue
		}
		for x, key := range []rune(tints[y]) {
			if x >= p.width {
				break
			}
			p.tints[y][x] = palette[key]
		}
	}
	return p
}

// Width returns the widest row of the page.
func (p Page) Width() int {
	return p.width
}

// Height returns the number of rows on the page.
func (p Page) Height() int {
	return len(p.glyphs)
}

// at returns the glyph and colour at (x, y), or Transparent outside the page.
func (p Page) at(x, y int) (rune, core.Color) {
	if y < 0 || y >= len(p.glyphs) || x < 0 || x >= len(p.glyphs[y]) {
		return Transparent, core.ColorDefault
	}
	return p.glyphs[y][x], p.tints[y][x]
}

// Atlas is the set of pages regions refer to by layer.
type Atlas struct {
	Pages []Page
}

// Cell returns the glyph at column i, row j of region r, reading mirrored
// regions right to left.
func (a *Atlas) Cell(r anim.SheetRegion, i, j int) (rune, core.Color) {
	layer := int(r.Layer)
	if layer < 0 || layer >= len(a.Pages) {
		return Transparent, core.ColorDefault
	}
	x := int(r.X) + i
	if r.Mirrored() {
		x = int(r.X) - 1 - i
	}
	return a.Pages[layer].at(x, int(r.Y)+j)
}

// Check returns an error when r does not lie inside its page.
func (a *Atlas) Check(r anim.SheetRegion) error {
	layer := int(r.Layer)
	if layer < 0 || layer >= len(a.Pages) {
		return fmt.Errorf("sprite: region layer %d out of range (%d pages)", layer, len(a.Pages))
	}
	page := a.Pages[layer]
	x0, x1 := int(r.X), int(r.X+r.W)
	if r.Mirrored() {
		x0, x1 = x1, x0
	}
	y0, y1 := int(r.Y), int(r.Y+r.H)
	if x0 < 0 || y0 < 0 || x1 > page.Width() || y1 > page.Height() || r.H < 0 {
		return fmt.Errorf("sprite: region %+v outside %dx%d page %d", r, page.Width(), page.Height(), layer)
	}
	return nil
}
