// Package terminal renders the board on a tcell screen and reads keys from it.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"torus-snake/controls"
	"torus-snake/game"
)

// Glyphs per cell role. Each cell is followed by a blank column so the board
// looks square in most terminal fonts.
const (
	glyphHead  = '@'
	glyphBody  = 'o'
	glyphFood  = '*'
	glyphEmpty = '.'
)

var (
	styleDefault = tcell.StyleDefault
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Board origin on screen: the HUD takes the first row.
const (
	boardX = 1
	boardY = 2
)

// Session is what the terminal needs from the game.
type Session interface {
	controls.Target
	Frame() game.Frame
	Subscribe() (<-chan game.Frame, func())
}

// KeyHandler receives the direction and pause keys.
type KeyHandler interface {
	HandleKey(key string) bool
}

type Terminal struct {
	screen tcell.Screen
	logger *slog.Logger
}

func New(screen tcell.Screen, logger *slog.Logger) *Terminal {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Terminal{screen: screen, logger: logger}
}

// Run initialises the screen, redraws on every published frame and routes
// keys until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context, s Session, keys KeyHandler) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer t.screen.Fini()
	t.screen.HideCursor()
	t.screen.Clear()

	frames, unsubscribe := s.Subscribe()
	defer unsubscribe()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := s.Frame()
	t.Draw(last)
	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			last = f
			t.Draw(f)
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.Draw(last)
			case *tcell.EventKey:
				name := KeyName(e)
				if name == "" {
					continue
				}
				if keys.HandleKey(name) {
					continue
				}
				action := controls.KeyAction(name)
				if action == controls.ActionQuit {
					t.logger.Info("terminal quit")
					return nil
				}
				controls.Apply(s, action)
			}
		}
	}
}

// KeyName converts a tcell key event to the shared key names.
func KeyName(e *tcell.EventKey) string {
	switch e.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "Escape"
	case tcell.KeyRune:
		return string(e.Rune())
	}
	return ""
}

// Draw paints one frame and shows it.
func (t *Terminal) Draw(f game.Frame) {
	t.screen.Clear()

	status := "running"
	switch {
	case f.Over:
		status = "GAME OVER - r to restart"
	case !f.Running:
		status = "paused"
	}
	t.drawText(0, 0, styleHUD, fmt.Sprintf("Score: %d  Best: %d  Speed: %dms  [%s]", f.Score, f.Best, f.Speed, status))

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			glyph, style := cellGlyph(f.At(x, y))
			t.screen.SetContent(boardX+x*2, boardY+y, glyph, nil, style)
		}
	}

	t.drawText(0, boardY+f.Height+1, styleDefault, "arrows/wasd move  space pause  r restart  +/- speed  q quit")
	t.screen.Show()
}

func cellGlyph(r game.Role) (rune, tcell.Style) {
	switch r {
	case game.RoleHead:
		return glyphHead, styleHead
	case game.RoleBody:
		return glyphBody, styleBody
	case game.RoleFood:
		return glyphFood, styleFood
	default:
		return glyphEmpty, styleEmpty
	}
}

func (t *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
