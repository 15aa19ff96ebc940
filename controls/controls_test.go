package controls

import (
	"testing"

	"torus-snake/game"
	"torus-snake/game/types"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestKeyAction(t *testing.T) {
	tests := map[string]Action{
		"r": ActionRestart, "+": ActionSlower, "=": ActionSlower,
		"-": ActionFaster, "q": ActionQuit, "Escape": ActionQuit,
		"w": ActionNone, " ": ActionNone, "ArrowUp": ActionNone,
	}
	for key, want := range tests {
		if got := KeyAction(key); got != want {
			t.Errorf("KeyAction(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestApplySpeedSteps(t *testing.T) {
	g := newGame(t)

	Apply(g, ActionSlower)
	if got := g.Frame().Speed; got != types.DefaultSpeed+types.SpeedStep {
		t.Errorf("speed = %d after slower", got)
	}
	Apply(g, ActionFaster)
	Apply(g, ActionFaster)
	if got := g.Frame().Speed; got != types.DefaultSpeed-types.SpeedStep {
		t.Errorf("speed = %d after faster", got)
	}

	g.SetSpeed(types.MinSpeed)
	Apply(g, ActionFaster)
	if got := g.Frame().Speed; got != types.MinSpeed {
		t.Errorf("speed = %d, want clamped %d", got, types.MinSpeed)
	}
}

func TestApplyPauseAndRestart(t *testing.T) {
	g := newGame(t)

	if !Apply(g, ActionTogglePause) || g.Phase() != game.Paused {
		t.Fatalf("phase = %v, want paused", g.Phase())
	}
	Apply(g, ActionRestart)
	if g.Phase() != game.Running {
		t.Errorf("phase after restart = %v, want running", g.Phase())
	}
	if Apply(g, ActionQuit) || Apply(g, ActionNone) {
		t.Error("quit/none should not be applied to the game")
	}
}

func TestParseAction(t *testing.T) {
	if ParseAction("pause") != ActionTogglePause || ParseAction("restart") != ActionRestart {
		t.Error("known actions not parsed")
	}
	if ParseAction("explode") != ActionNone {
		t.Error("unknown action parsed")
	}
}

func TestSlider(t *testing.T) {
	s := NewSpeedSlider(100, 240)
	tests := []struct {
		px   float32
		want int
	}{
		{50, types.MinSpeed},
		{100, types.MinSpeed},
		{220, 180},
		{340, types.MaxSpeed},
		{500, types.MaxSpeed},
	}
	for _, tt := range tests {
		if got := s.ValueAt(tt.px); got != tt.want {
			t.Errorf("ValueAt(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
	if x := s.KnobX(180); x != 220 {
		t.Errorf("KnobX(180) = %v, want 220", x)
	}
	if got := s.ValueAt(s.KnobX(140)); got != 140 {
		t.Errorf("round trip 140 -> %d", got)
	}
}
