package entity

import (
	"torus-snake/game/types"
)

// Snake is an ordered body, head first and tail last.
// Move and Grow return a new Snake and never touch the receiver's body,
// so a snapshot holding a Snake stays valid after the game advances.
type Snake struct {
	Body []types.Point
}

func NewSnake(body []types.Point) Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return Snake{Body: b}
}

func (s Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any body segment sits on p.
func (s Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Grow prepends newHead and keeps the tail.
func (s Snake) Grow(newHead types.Point) Snake {
	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)
	return Snake{Body: body}
}

// Move prepends newHead and drops the tail, keeping the length.
func (s Snake) Move(newHead types.Point) Snake {
	grown := s.Grow(newHead)
	grown.Body = grown.Body[:len(grown.Body)-1]
	return grown
}

// Clone returns a snake with its own copy of the body.
func (s Snake) Clone() Snake {
	return NewSnake(s.Body)
}
