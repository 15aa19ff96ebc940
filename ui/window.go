package ui

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/controls"
	"torus-snake/game"
)

// Session is what the desktop window needs from the game.
type Session interface {
	controls.Target
	Frame() game.Frame
}

// KeyHandler receives the direction and pause keys.
type KeyHandler interface {
	HandleKey(key string) bool
}

// keyNames maps raylib key codes to the names used by the input handler
// and the controls.
var keyNames = map[int32]string{
	rl.KeyUp:         "ArrowUp",
	rl.KeyDown:       "ArrowDown",
	rl.KeyLeft:       "ArrowLeft",
	rl.KeyRight:      "ArrowRight",
	rl.KeyW:          "w",
	rl.KeyA:          "a",
	rl.KeyS:          "s",
	rl.KeyD:          "d",
	rl.KeySpace:      " ",
	rl.KeyR:          "r",
	rl.KeyEqual:      "+",
	rl.KeyKpAdd:      "+",
	rl.KeyMinus:      "-",
	rl.KeyKpSubtract: "-",
	rl.KeyQ:          "q",
}

// RunWindow opens the desktop window and blocks until it is closed or ctx is
// done. raylib must stay on the calling goroutine, which should be main.
func RunWindow(ctx context.Context, s Session, keys KeyHandler, logger *slog.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(820, 560, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	logger.Info("window opened", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
	defer logger.Info("window closed")

	renderer := NewRenderer()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			name, ok := keyNames[key]
			if !ok {
				continue
			}
			if keys.HandleKey(name) {
				continue
			}
			action := controls.KeyAction(name)
			if action == controls.ActionQuit {
				return nil
			}
			controls.Apply(s, action)
		}

		handleMouse(renderer.Layout(), s)
		renderer.Draw(s.Frame())
	}
	return nil
}

func handleMouse(l Layout, s Session) {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case rl.CheckCollisionPointRec(mouse, l.PauseButton):
			controls.Apply(s, controls.ActionTogglePause)
			return
		case rl.CheckCollisionPointRec(mouse, l.ResetButton):
			controls.Apply(s, controls.ActionRestart)
			return
		}
	}

	// Grow the hit box vertically so the thin track is easy to grab.
	track := l.SpeedTrack
	track.Y -= 6
	track.Height += 12
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, track) {
		s.SetSpeed(l.Slider.ValueAt(mouse.X))
	}
}
