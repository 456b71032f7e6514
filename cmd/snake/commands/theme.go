package commands

import (
	"sort"

	"github.com/battlesnakeio/arcade/rules"
	termbox "github.com/nsf/termbox-go"
)

// cellStyle is how one board cell is drawn. Cells are two terminal columns
// wide so the board comes out roughly square.
type cellStyle struct {
	ch, pad rune
	fg, bg  termbox.Attribute
}

type theme struct {
	name   string
	title  string
	text   termbox.Attribute
	border termbox.Attribute
	cells  map[rules.CellKind]cellStyle
	status map[rules.GameStatus]termbox.Attribute
}

func (t theme) cell(kind rules.CellKind) cellStyle {
	if s, ok := t.cells[kind]; ok {
		return s
	}
	return t.cells[rules.CellEmpty]
}

func (t theme) statusColor(status rules.GameStatus) termbox.Attribute {
	if c, ok := t.status[status]; ok {
		return c
	}
	return t.text
}

var themes = map[string]theme{
	"classic": {
		name:   "classic",
		title:  "Snake - Classic arcade fun!",
		text:   termbox.ColorDefault,
		border: termbox.ColorDefault,
		cells: map[rules.CellKind]cellStyle{
			rules.CellEmpty: {ch: '·', pad: ' ', fg: termbox.ColorBlack | termbox.AttrBold, bg: termbox.ColorDefault},
			rules.CellBody:  {ch: ' ', pad: ' ', fg: termbox.ColorGreen, bg: termbox.ColorGreen},
			rules.CellHead:  {ch: ' ', pad: ' ', fg: termbox.ColorGreen, bg: termbox.ColorGreen | termbox.AttrBold},
			rules.CellFood:  {ch: '●', pad: ' ', fg: termbox.ColorRed | termbox.AttrBold, bg: termbox.ColorDefault},
		},
		status: map[rules.GameStatus]termbox.Attribute{
			rules.GameStatusNotStarted: termbox.ColorMagenta,
			rules.GameStatusRunning:    termbox.ColorGreen,
			rules.GameStatusOver:       termbox.ColorRed,
			rules.GameStatusWon:        termbox.ColorYellow,
		},
	},
	"neon": {
		name:   "neon",
		title:  "SNAKE // neon",
		text:   termbox.ColorCyan,
		border: termbox.ColorMagenta | termbox.AttrBold,
		cells: map[rules.CellKind]cellStyle{
			rules.CellEmpty: {ch: ' ', pad: ' ', fg: termbox.ColorDefault, bg: termbox.ColorBlack},
			rules.CellBody:  {ch: '▒', pad: '▒', fg: termbox.ColorCyan, bg: termbox.ColorBlack},
			rules.CellHead:  {ch: '█', pad: '█', fg: termbox.ColorCyan | termbox.AttrBold, bg: termbox.ColorBlack},
			rules.CellFood:  {ch: '◆', pad: ' ', fg: termbox.ColorMagenta | termbox.AttrBold, bg: termbox.ColorBlack},
		},
		status: map[rules.GameStatus]termbox.Attribute{
			rules.GameStatusNotStarted: termbox.ColorBlue | termbox.AttrBold,
			rules.GameStatusRunning:    termbox.ColorCyan | termbox.AttrBold,
			rules.GameStatusOver:       termbox.ColorMagenta | termbox.AttrBold,
			rules.GameStatusWon:        termbox.ColorYellow | termbox.AttrBold,
		},
	},
}

func themeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
