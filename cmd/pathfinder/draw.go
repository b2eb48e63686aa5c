package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
)

const (
	originX   = 1
	originY   = 1
	cellWidth = 2
	helpText  = "arrows/hjkl move  space wall  enter run  r reset  +/- size  q quit"
)

var (
	styleOpen    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFinish  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// glyph picks the rune and style of one board cell. Endpoints and walls win
// over the replay overlay.
func glyph(cell grid.Cell, overlay map[grid.Coord]animation.State) (rune, tcell.Style) {
	switch {
	case cell.IsStart:
		return 'S', styleStart
	case cell.IsFinish:
		return 'F', styleFinish
	case cell.IsWall:
		return ' ', styleWall
	}
	if st, ok := overlay[cell.Coord]; ok {
		if st == animation.OnShortestPath {
			return '*', stylePath
		}
		return '.', styleVisited
	}
	return '.', styleOpen
}

func (u *ui) draw() {
	g := u.sess.Grid()
	for r, row := range g.Rows() {
		for c, cell := range row {
			ch, style := glyph(cell, u.overlay)
			if cell.Coord == u.cursor {
				style = style.Reverse(true)
			}
			x, y := originX+c*cellWidth, originY+r
			u.screen.SetContent(x, y, ch, nil, style)
			u.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	y := originY + g.Height() + 1
	u.drawLine(y, u.status, styleStatus)
	u.drawLine(y+1, helpText, styleHelp)
	u.screen.Show()
}

// drawLine writes s at row y and blanks the rest of the row.
func (u *ui) drawLine(y int, s string, style tcell.Style) {
	w, _ := u.screen.Size()
	x := originX
	for _, ch := range s {
		u.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < w; x++ {
		u.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
