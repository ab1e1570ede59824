// Package control turns viewer commands into window and scene operations.
// It knows nothing about the input device; the ebiten and terminal
// front ends translate their own key events into Commands.
package control

import (
	"fmt"
	"slices"
	"strings"
)

type Command uint8

const (
	CmdNone Command = iota
	CmdZoomIn
	CmdZoomOut
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdRotateXPos
	CmdRotateXNeg
	CmdRotateYPos
	CmdRotateYNeg
	CmdRotateZPos
	CmdRotateZNeg
	CmdToggleProjection
	CmdCycleAlgorithm
	CmdReset
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:             "none",
	CmdZoomIn:           "zoom-in",
	CmdZoomOut:          "zoom-out",
	CmdMoveUp:           "move-up",
	CmdMoveDown:         "move-down",
	CmdMoveLeft:         "move-left",
	CmdMoveRight:        "move-right",
	CmdRotateXPos:       "rotate-x+",
	CmdRotateXNeg:       "rotate-x-",
	CmdRotateYPos:       "rotate-y+",
	CmdRotateYNeg:       "rotate-y-",
	CmdRotateZPos:       "rotate-z+",
	CmdRotateZNeg:       "rotate-z-",
	CmdToggleProjection: "toggle-projection",
	CmdCycleAlgorithm:   "cycle-algorithm",
	CmdReset:            "reset",
	CmdQuit:             "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range commandNames {
		if name == s {
			return Command(i), nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", s)
}

// RuneBindings maps printable keys to commands. Both front ends use it;
// arrow keys are bound separately by each.
var RuneBindings = map[rune]Command{
	'+': CmdZoomIn,
	'=': CmdZoomIn,
	'-': CmdZoomOut,
	'w': CmdMoveUp,
	's': CmdMoveDown,
	'a': CmdMoveLeft,
	'd': CmdMoveRight,
	'x': CmdRotateXPos,
	'X': CmdRotateXNeg,
	'y': CmdRotateYPos,
	'Y': CmdRotateYNeg,
	'z': CmdRotateZPos,
	'Z': CmdRotateZNeg,
	'p': CmdToggleProjection,
	'c': CmdCycleAlgorithm,
	'r': CmdReset,
	'q': CmdQuit,
}

// Frame collects the commands fired during one input frame. Commands keep
// the order they were first added in and fire at most once per frame.
type Frame struct {
	cmds []Command
}

func (f *Frame) Reset() { f.cmds = f.cmds[:0] }

func (f *Frame) Add(c Command) {
	if c == CmdNone || slices.Contains(f.cmds, c) {
		return
	}
	f.cmds = append(f.cmds, c)
}

func (f *Frame) Commands() []Command { return f.cmds }
