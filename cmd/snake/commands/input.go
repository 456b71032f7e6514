package commands

import (
	"context"
	"unicode"

	"github.com/battlesnakeio/arcade/game"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

var keyCommands = map[termbox.Key]game.Command{
	termbox.KeyArrowUp:    game.CommandUp,
	termbox.KeyArrowDown:  game.CommandDown,
	termbox.KeyArrowLeft:  game.CommandLeft,
	termbox.KeyArrowRight: game.CommandRight,
	termbox.KeyEnter:      game.CommandStart,
	termbox.KeySpace:      game.CommandStart,
}

var runeCommands = map[rune]game.Command{
	'w': game.CommandUp,
	'k': game.CommandUp,
	's': game.CommandDown,
	'j': game.CommandDown,
	'a': game.CommandLeft,
	'h': game.CommandLeft,
	'd': game.CommandRight,
	'l': game.CommandRight,
	'r': game.CommandRestart,
}

// commandForEvent maps a terminal event to a game command.
func commandForEvent(ev termbox.Event) (game.Command, bool) {
	if ev.Type != termbox.EventKey {
		return 0, false
	}
	if ev.Ch != 0 {
		cmd, ok := runeCommands[unicode.ToLower(ev.Ch)]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key]
	return cmd, ok
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	if ev.Ch != 0 {
		return unicode.ToLower(ev.Ch) == 'q'
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC
}

// pumpEvents forwards key presses to commands until a quit key is pressed,
// the context is done or the poll is interrupted. poll is termbox.PollEvent
// outside of tests.
func pumpEvents(ctx context.Context, quit func(), poll func() termbox.Event, commands chan<- game.Command) {
	for {
		ev := poll()
		switch {
		case ev.Type == termbox.EventInterrupt:
			return
		case ev.Type == termbox.EventError:
			log.WithError(ev.Err).Error("terminal input failed")
			quit()
			return
		case isQuit(ev):
			quit()
			return
		}

		cmd, ok := commandForEvent(ev)
		if !ok {
			continue
		}
		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
