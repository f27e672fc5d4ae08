package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"santorini/game"
)

// Cell geometry in terminal characters. Each square is wide enough for a
// border, the level digit and a worker glyph.
const (
	cellWidth  = 7
	cellHeight = 3
	boardRows  = game.BoardSize * cellHeight
)

var (
	levelStyles = [game.MaxHeight + 1]tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite),
		tcell.StyleDefault.Background(tcell.ColorDarkGoldenrod).Foreground(tcell.ColorBlack),
		tcell.StyleDefault.Background(tcell.ColorLightGoldenrodYellow).Foreground(tcell.ColorBlack),
		tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
	}
	cappedStyle = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)

	playerStyles = [2]tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true),
		tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true),
	}
	playerGlyphs = [2]rune{'X', 'O'}

	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// board draws the grid with the cursor and the highlighted targets, anchored
// at the top-left corner (left, top) of the screen.
type board struct {
	state      *game.State
	cursor     game.Point
	highlights []game.Point
}

func (b board) highlighted(p game.Point) bool {
	for _, h := range b.highlights {
		if h == p {
			return true
		}
	}
	return false
}

func (b board) cellStyle(p game.Point) tcell.Style {
	if player, _, ok := b.state.WorkerAt(p); ok {
		return playerStyles[player]
	}
	if b.state.Board().Capped(p) {
		return cappedStyle
	}
	return levelStyles[b.state.Board().Height(p)]
}

func (b board) draw(s tcell.Screen, left, top int) {
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			b.drawCell(s, game.Point{Row: r, Col: c}, left+c*cellWidth, top+r*cellHeight)
		}
	}
}

func (b board) drawCell(s tcell.Screen, p game.Point, x, y int) {
	style := b.cellStyle(p)

	border := style
	switch {
	case p == b.cursor:
		border = style.Foreground(tcell.ColorYellow).Bold(true)
	case b.highlighted(p):
		border = style.Foreground(tcell.ColorGreen).Bold(true)
	}
	drawBorder(s, x, y, cellWidth, cellHeight, border)

	label := fmt.Sprintf("%d", b.state.Board().Height(p))
	if b.state.Board().Capped(p) {
		label = "^"
	}
	if player, _, ok := b.state.WorkerAt(p); ok {
		label = fmt.Sprintf("%c%s", playerGlyphs[player], label)
	}
	drawText(s, x+(cellWidth-len(label))/2, y+cellHeight/2, style, label)
}

func drawBorder(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := 1; i < w-1; i++ {
		s.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		s.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for i := 1; i < h-1; i++ {
		s.SetContent(x, y+i, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, y+i, tcell.RuneVLine, nil, style)
		for j := 1; j < w-1; j++ {
			s.SetContent(x+j, y+i, ' ', nil, style)
		}
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
