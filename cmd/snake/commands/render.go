package commands

import (
	"fmt"

	"github.com/battlesnakeio/arcade/rules"
	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	left         = 2
	top          = 1
	helpText     = "arrows/wasd/hjkl move · enter start · r restart · q quit"
)

type setCellFunc func(x, y int, ch rune, fg, bg termbox.Attribute)

type renderer struct {
	theme   theme
	setCell setCellFunc
}

func newRenderer(t theme) *renderer {
	return &renderer{theme: t, setCell: termbox.SetCell}
}

func (r *renderer) render(s rules.Snapshot) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}
	r.draw(s)
	return termbox.Flush()
}

func (r *renderer) draw(s rules.Snapshot) {
	t := r.theme
	r.print(left-1, top, t.text|termbox.AttrBold, defaultColor, t.title)
	r.print(left-1, top+1, t.text, defaultColor,
		fmt.Sprintf("SCORE %-6d BEST %-6d TURN %d", s.Score, s.HighScore, s.Turn))
	r.print(left-1, top+2, t.statusColor(s.Status), defaultColor, statusMessage(s))

	boardTop := top + 3
	r.drawBoard(boardTop, int(s.Size))
	for y, row := range s.Grid() {
		for x, kind := range row {
			c := t.cell(kind)
			r.setCell(left+2*x, boardTop+1+y, c.ch, c.fg, c.bg)
			r.setCell(left+2*x+1, boardTop+1+y, c.pad, c.fg, c.bg)
		}
	}

	r.print(left-1, boardTop+int(s.Size)+2, t.text, defaultColor, helpText)
}

func (r *renderer) drawBoard(boardTop, size int) {
	var (
		fg     = r.theme.border
		right  = left + 2*size
		bottom = boardTop + size + 1
	)
	for i := boardTop + 1; i < bottom; i++ {
		r.setCell(left-1, i, '│', fg, defaultColor)
		r.setCell(right, i, '│', fg, defaultColor)
	}
	for i := left; i < right; i++ {
		r.setCell(i, boardTop, '─', fg, defaultColor)
		r.setCell(i, bottom, '─', fg, defaultColor)
	}
	r.setCell(left-1, boardTop, '┌', fg, defaultColor)
	r.setCell(left-1, bottom, '└', fg, defaultColor)
	r.setCell(right, boardTop, '┐', fg, defaultColor)
	r.setCell(right, bottom, '┘', fg, defaultColor)
}

// print writes msg starting at x and returns the column after it.
func (r *renderer) print(x, y int, fg, bg termbox.Attribute, msg string) int {
	for _, c := range msg {
		r.setCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
	return x
}

func statusMessage(s rules.Snapshot) string {
	switch s.Status {
	case rules.GameStatusOver:
		return "Game Over! Press r to play again"
	case rules.GameStatusWon:
		return "You filled the board! Press r to play again"
	case rules.GameStatusNotStarted:
		return "Press any arrow key or enter to start!"
	default:
		return "Gobble up those juicy apples!"
	}
}
