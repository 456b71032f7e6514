package game

import "github.com/battlesnakeio/arcade/rules"

// Command is a single player input. Keyboard keys and on screen buttons both
// map onto the same set of commands.
type Command int

// Commands understood by a Session.
const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandStart
	CommandRestart
)

var commandNames = map[Command]string{
	CommandUp:      "up",
	CommandDown:    "down",
	CommandLeft:    "left",
	CommandRight:   "right",
	CommandStart:   "start",
	CommandRestart: "restart",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the direction for the four movement commands.
func (c Command) Direction() (rules.Direction, bool) {
	switch c {
	case CommandUp:
		return rules.Up, true
	case CommandDown:
		return rules.Down, true
	case CommandLeft:
		return rules.Left, true
	case CommandRight:
		return rules.Right, true
	}
	return rules.Direction{}, false
}

// Handle applies a command to the session. Unknown commands are ignored. It
// returns whether the command changed anything.
func (s *Session) Handle(c Command) bool {
	if dir, ok := c.Direction(); ok {
		return s.Turn(dir)
	}
	switch c {
	case CommandStart:
		return s.Start()
	case CommandRestart:
		s.Restart()
		return true
	}
	return false
}
