package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/ocean/internal/engine/control"
)

// Command is a host-level key binding outside the parameter controls.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandScreenshot
	CommandToggleStatus
)

// KeyCommand maps a scancode to a host command.
func KeyCommand(key sdl.Scancode) Command {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		return CommandQuit
	case sdl.SCANCODE_F12:
		return CommandScreenshot
	case sdl.SCANCODE_F1:
		return CommandToggleStatus
	}
	return CommandNone
}

// KeyAction maps a scancode to a control action. Shift selects the
// reverse direction for Tab and the global variant for R.
func KeyAction(key sdl.Scancode, shift bool) control.Action {
	switch key {
	case sdl.SCANCODE_TAB:
		if shift {
			return control.ActionPrev
		}
		return control.ActionNext
	case sdl.SCANCODE_UP, sdl.SCANCODE_RIGHT:
		return control.ActionIncrease
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_LEFT:
		return control.ActionDecrease
	case sdl.SCANCODE_R:
		if shift {
			return control.ActionResetAll
		}
		return control.ActionReset
	}
	return control.ActionNone
}
