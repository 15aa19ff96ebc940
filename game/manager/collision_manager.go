package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	if c == SelfCollision {
		return "self"
	}
	return "none"
}

// CollisionManager moves heads across a toroidal board. Edges are passable,
// so the only collision left is the snake running into itself.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// NextHead returns the cell the head enters when stepping along dir,
// wrapped onto the board.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	return cm.grid.Wrap(head.Add(dir))
}

// CheckCollision tests pos against the whole pre-move body, tail included.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake entity.Snake) CollisionType {
	if snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
