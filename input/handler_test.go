package input

import (
	"testing"

	"torus-snake/game"
	"torus-snake/game/types"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		key  string
		ok   bool
		want Intent
	}{
		{"ArrowUp", true, Intent{Kind: IntentSteer, Direction: types.Up}},
		{"w", true, Intent{Kind: IntentSteer, Direction: types.Up}},
		{"ArrowDown", true, Intent{Kind: IntentSteer, Direction: types.Down}},
		{"s", true, Intent{Kind: IntentSteer, Direction: types.Down}},
		{"ArrowLeft", true, Intent{Kind: IntentSteer, Direction: types.Left}},
		{"a", true, Intent{Kind: IntentSteer, Direction: types.Left}},
		{"ArrowRight", true, Intent{Kind: IntentSteer, Direction: types.Right}},
		{"d", true, Intent{Kind: IntentSteer, Direction: types.Right}},
		{" ", true, Intent{Kind: IntentTogglePause}},
		{"Space", true, Intent{Kind: IntentTogglePause}},
		{"x", false, Intent{}},
		{"Enter", false, Intent{}},
		{"", false, Intent{}},
	}
	for _, tt := range tests {
		got, ok := Translate(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Translate(%q) = %+v, %v; want %+v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func newGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 99
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestHandleKeyReadsLatestDirection(t *testing.T) {
	g := newGame(t)
	h := NewHandler(g, nil)

	h.HandleKey("ArrowLeft")
	if g.Direction() != types.Right {
		t.Fatalf("reversal committed: %v", g.Direction())
	}

	h.HandleKey("w")
	if g.Direction() != types.Up {
		t.Fatalf("direction = %v, want up", g.Direction())
	}
	// Down is now the reversal, Left is not.
	h.HandleKey("s")
	if g.Direction() != types.Up {
		t.Errorf("direction = %v, want up", g.Direction())
	}
	h.HandleKey("a")
	if g.Direction() != types.Left {
		t.Errorf("direction = %v, want left", g.Direction())
	}
}

func TestHandleKeyTogglesPause(t *testing.T) {
	g := newGame(t)
	h := NewHandler(g, nil)

	if !h.HandleKey(" ") || g.Phase() != game.Paused {
		t.Fatalf("phase = %v, want paused", g.Phase())
	}
	h.HandleKey(" ")
	if g.Phase() != game.Running {
		t.Errorf("phase = %v, want running", g.Phase())
	}
}

func TestHandleKeyIgnoresOtherKeys(t *testing.T) {
	g := newGame(t)
	h := NewHandler(g, nil)
	before := g.Snapshot()

	for _, key := range []string{"q", "Enter", "W", "ArrowUpp"} {
		if h.HandleKey(key) {
			t.Errorf("key %q consumed", key)
		}
	}
	after := g.Snapshot()
	if after.Direction != before.Direction || after.Phase() != before.Phase() {
		t.Error("ignored key changed state")
	}
}
