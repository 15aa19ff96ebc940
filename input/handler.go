// Package input turns named key presses into game transitions.
package input

import (
	"io"
	"log/slog"

	"torus-snake/game"
	"torus-snake/game/types"
)

// Key names delivered by the keyboard sources. They follow the browser
// KeyboardEvent.key values so the remote surface can forward them as is.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
)

type IntentKind int

const (
	IntentSteer IntentKind = iota
	IntentTogglePause
)

// Intent is what a key asks for.
type Intent struct {
	Kind      IntentKind
	Direction types.Direction
}

var keyMap = map[string]Intent{
	KeyArrowUp:    {Kind: IntentSteer, Direction: types.Up},
	"w":           {Kind: IntentSteer, Direction: types.Up},
	KeyArrowDown:  {Kind: IntentSteer, Direction: types.Down},
	"s":           {Kind: IntentSteer, Direction: types.Down},
	KeyArrowLeft:  {Kind: IntentSteer, Direction: types.Left},
	"a":           {Kind: IntentSteer, Direction: types.Left},
	KeyArrowRight: {Kind: IntentSteer, Direction: types.Right},
	"d":           {Kind: IntentSteer, Direction: types.Right},
	KeySpace:      {Kind: IntentTogglePause},
	"Space":       {Kind: IntentTogglePause},
}

// Translate maps a key name to an intent. Unknown keys report false.
func Translate(key string) (Intent, bool) {
	intent, ok := keyMap[key]
	return intent, ok
}

// Target is the game side of the handler. Steer must compare against the
// latest committed direction at call time.
type Target interface {
	Steer(dir types.Direction) bool
	TogglePause() game.Phase
}

type Handler struct {
	target Target
	logger *slog.Logger
}

func NewHandler(target Target, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{target: target, logger: logger}
}

// HandleKey applies at most one transition for key and reports whether the
// key was consumed. A rejected reversal still counts as consumed.
func (h *Handler) HandleKey(key string) bool {
	intent, ok := Translate(key)
	if !ok {
		return false
	}

	switch intent.Kind {
	case IntentSteer:
		if !h.target.Steer(intent.Direction) {
			h.logger.Debug("steer rejected", "key", key, "dir", intent.Direction)
		}
	case IntentTogglePause:
		phase := h.target.TogglePause()
		h.logger.Debug("pause toggled", "key", key, "phase", phase)
	}
	return true
}
