package grid

import (
	"fmt"
	"strings"
)

// Glyphs used by String and Parse.
const (
	GlyphOpen   = '.'
	GlyphWall   = '#'
	GlyphStart  = 'S'
	GlyphFinish = 'F'
)

// String renders the grid one row per line using the Glyph constants.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.height)
	for i, cell := range g.cells {
		switch {
		case cell.IsStart:
			b.WriteRune(GlyphStart)
		case cell.IsFinish:
			b.WriteRune(GlyphFinish)
		case cell.IsWall:
			b.WriteRune(GlyphWall)
		default:
			b.WriteRune(GlyphOpen)
		}
		if (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Parse builds a grid from the String format. Leading and trailing blank
// lines and per-line indentation are ignored. Errors wrap ErrConfig.
func Parse(s string, opts ...Option) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	width := -1
	var (
		start, finish Coord
		haveS, haveF  bool
		walls         []Coord
	)
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrConfig, r, len(line), width)
		}
		for c, ch := range line {
			at := Coord{Row: r, Col: c}
			switch ch {
			case GlyphOpen:
			case GlyphWall:
				walls = append(walls, at)
			case GlyphStart:
				if haveS {
					return nil, fmt.Errorf("%w: second start at %v", ErrConfig, at)
				}
				start, haveS = at, true
			case GlyphFinish:
				if haveF {
					return nil, fmt.Errorf("%w: second finish at %v", ErrConfig, at)
				}
				finish, haveF = at, true
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrConfig, ch, at)
			}
		}
	}
	if !haveS || !haveF {
		return nil, fmt.Errorf("%w: grid needs one %c and one %c", ErrConfig, GlyphStart, GlyphFinish)
	}

	g, err := New(len(lines), width, start, finish, opts...)
	if err != nil {
		return nil, err
	}
	return g.SetWalls(walls...)
}
