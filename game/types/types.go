package types

import "fmt"

// Game constants
const (
	GridSize     = 20  // Cells per side of the default board
	FoodReward   = 5   // Score gained per food eaten
	DefaultSpeed = 140 // Tick interval in milliseconds
	MinSpeed     = 60
	MaxSpeed     = 300
	SpeedStep    = 10 // Keyboard speed control step
)

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a size x size grid.
func Square(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds each axis of p back onto the board independently.
// Only single-step overflow is expected: below zero goes to the far edge,
// reaching the size goes to zero.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.X >= g.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - 1
	}
	if p.Y >= g.Height {
		p.Y = 0
	}
	return p
}

// Index returns the row-major index of p.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// ClampSpeed bounds a tick interval to [MinSpeed, MaxSpeed].
func ClampSpeed(ms int) int {
	if ms < MinSpeed {
		return MinSpeed
	}
	if ms > MaxSpeed {
		return MaxSpeed
	}
	return ms
}

// StartSnake is the body every game starts with, head first.
func StartSnake() []Point {
	return []Point{
		{X: 8, Y: 10},
		{X: 7, Y: 10},
		{X: 6, Y: 10},
	}
}

// MinGridSize is the smallest square board that fits StartSnake.
const MinGridSize = 12
