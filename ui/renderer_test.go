package ui

import (
	"testing"

	"torus-snake/game/types"
)

func TestComputeLayoutFitsBoard(t *testing.T) {
	l := ComputeLayout(820, 560, types.GridSize, types.GridSize)

	if l.CellSize <= 0 {
		t.Fatalf("cell size = %d", l.CellSize)
	}
	if l.GridWidth != l.CellSize*types.GridSize || l.GridHeight != l.GridWidth {
		t.Errorf("grid %dx%d for cell %d", l.GridWidth, l.GridHeight, l.CellSize)
	}
	if l.OffsetY < 0 || l.OffsetY+l.GridHeight > 560 {
		t.Errorf("board does not fit vertically: offset %d height %d", l.OffsetY, l.GridHeight)
	}
	if l.PauseButton.X < float32(l.OffsetX+l.GridWidth) {
		t.Errorf("panel overlaps board: button at %v", l.PauseButton.X)
	}
	if l.ResetButton.X <= l.PauseButton.X {
		t.Errorf("restart button not right of pause button")
	}
	if got := l.Slider.ValueAt(l.SpeedTrack.X); got != types.MinSpeed {
		t.Errorf("slider left end = %d", got)
	}
	if got := l.Slider.ValueAt(l.SpeedTrack.X + l.SpeedTrack.Width); got != types.MaxSpeed {
		t.Errorf("slider right end = %d", got)
	}
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(100, 50, types.GridSize, types.GridSize)
	if l.CellSize != 1 {
		t.Errorf("cell size = %d, want floor of 1", l.CellSize)
	}
}

func TestKeyNamesCoverMovement(t *testing.T) {
	want := map[string]bool{"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,
		"w": true, "a": true, "s": true, "d": true, " ": true}
	for _, name := range keyNames {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("unmapped movement keys: %v", want)
	}
}
