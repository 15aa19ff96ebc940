package game

import (
	"fmt"

	"torus-snake/game/types"
)

// Role tags what occupies a cell in a Frame.
type Role int

const (
	RoleEmpty Role = iota
	RoleHead
	RoleBody
	RoleFood
)

var roleNames = [...]string{"empty", "head", "body", "food"}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	for i, name := range roleNames {
		if name == string(b) {
			*r = Role(i)
			return nil
		}
	}
	return fmt.Errorf("unknown role %q", b)
}

// Frame is everything a rendering surface needs to redraw the board.
type Frame struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Cells   []Role `json:"cells"` // row-major
	Score   int    `json:"score"`
	Length  int    `json:"length"`
	Running bool   `json:"running"`
	Over    bool   `json:"over"`
	Phase   string `json:"phase"`
	Speed   int    `json:"speed"`
	Best    int    `json:"best"`
	Games   int    `json:"games"`
	RunID   string `json:"run"`
}

// Render builds a Frame from a state. Head wins over body, body over food.
func Render(s State, grid types.Grid) Frame {
	cells := make([]Role, grid.Cells())
	if grid.Contains(s.Food) {
		cells[grid.Index(s.Food)] = RoleFood
	}
	for i, p := range s.Snake.Body {
		if !grid.Contains(p) {
			continue
		}
		if i == 0 {
			cells[grid.Index(p)] = RoleHead
			continue
		}
		if cells[grid.Index(p)] != RoleHead {
			cells[grid.Index(p)] = RoleBody
		}
	}

	return Frame{
		Width:   grid.Width,
		Height:  grid.Height,
		Cells:   cells,
		Score:   s.Score,
		Length:  s.Snake.Len(),
		Running: s.Running,
		Over:    s.Over,
		Phase:   s.Phase().String(),
		Speed:   s.Speed,
	}
}

// At returns the role of cell (x, y).
func (f Frame) At(x, y int) Role {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return RoleEmpty
	}
	return f.Cells[y*f.Width+x]
}
