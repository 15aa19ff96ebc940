// Package controls is the controls surface shared by every front end:
// pause/resume, restart and the speed input.
package controls

import (
	"time"

	"torus-snake/game"
	"torus-snake/game/types"
)

// Target is the game side of the controls.
type Target interface {
	TogglePause() game.Phase
	Restart()
	SetSpeed(ms int) int
	Speed() time.Duration
}

// Action is a control the user triggered.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionRestart
	ActionSlower // raise the tick interval
	ActionFaster // lower the tick interval
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionTogglePause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionSlower:
		return "slower"
	case ActionFaster:
		return "faster"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// ParseAction maps the names used by the remote API.
func ParseAction(name string) Action {
	switch name {
	case "pause", "resume", "toggle":
		return ActionTogglePause
	case "restart":
		return ActionRestart
	case "slower":
		return ActionSlower
	case "faster":
		return ActionFaster
	default:
		return ActionNone
	}
}

// KeyAction maps the control keys of the keyboard front ends. Keys used by
// the input handler never map here.
func KeyAction(key string) Action {
	switch key {
	case "r", "R":
		return ActionRestart
	case "+", "=":
		return ActionSlower
	case "-", "_":
		return ActionFaster
	case "q", "Q", "Escape":
		return ActionQuit
	default:
		return ActionNone
	}
}

// Apply runs a on t. It reports false for actions the game does not handle
// (none, quit).
func Apply(t Target, a Action) bool {
	switch a {
	case ActionTogglePause:
		t.TogglePause()
	case ActionRestart:
		t.Restart()
	case ActionSlower:
		StepSpeed(t, types.SpeedStep)
	case ActionFaster:
		StepSpeed(t, -types.SpeedStep)
	default:
		return false
	}
	return true
}

// StepSpeed moves the tick interval by delta ms and returns the new value.
func StepSpeed(t Target, delta int) int {
	current := int(t.Speed() / time.Millisecond)
	return t.SetSpeed(current + delta)
}

// Slider maps a horizontal track to the speed range.
type Slider struct {
	X, Width float32
	Min, Max int
}

func NewSpeedSlider(x, width float32) Slider {
	return Slider{X: x, Width: width, Min: types.MinSpeed, Max: types.MaxSpeed}
}

// ValueAt returns the value under horizontal position px, clamped to the track.
func (s Slider) ValueAt(px float32) int {
	if s.Width <= 0 {
		return s.Min
	}
	ratio := (px - s.X) / s.Width
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return s.Min + int(ratio*float32(s.Max-s.Min)+0.5)
}

// KnobX returns the horizontal position that shows value.
func (s Slider) KnobX(value int) float32 {
	if s.Max == s.Min {
		return s.X
	}
	if value < s.Min {
		value = s.Min
	}
	if value > s.Max {
		value = s.Max
	}
	return s.X + s.Width*float32(value-s.Min)/float32(s.Max-s.Min)
}
