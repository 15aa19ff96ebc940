package game

import (
	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// State is one immutable snapshot of a game. Advance never modifies its
// input; the returned State owns its own snake body.
type State struct {
	Snake     entity.Snake
	Direction types.Direction
	Food      types.Point
	Running   bool
	Over      bool
	Speed     int // tick interval, ms
	Score     int
}

// Phase derived from the running and over flags.
type Phase int

const (
	Running Phase = iota
	Paused
	Ended
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

func (s State) Phase() Phase {
	switch {
	case s.Over:
		return Ended
	case s.Running:
		return Running
	default:
		return Paused
	}
}

// Outcome tells what a single Advance did.
type Outcome int

const (
	OutcomeIdle     Outcome = iota // not running, nothing changed
	OutcomeMoved                   // stepped, length unchanged
	OutcomeAte                     // stepped onto food and grew
	OutcomeCollided                // new head hit the body, game over
	OutcomeFilled                  // grew onto the last free cell, game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// FoodPlacer picks a food cell off the given snake.
type FoodPlacer interface {
	GenerateFood(snake entity.Snake) (types.Point, error)
}

// Rules bundles what Advance needs besides the state itself.
type Rules struct {
	Collision *manager.CollisionManager
	Food      FoodPlacer
	Reward    int
}

// Advance computes the next state for one tick.
func Advance(s State, r Rules) (State, Outcome) {
	if !s.Running || s.Over {
		return s, OutcomeIdle
	}

	newHead := r.Collision.NextHead(s.Snake.GetHead(), s.Direction)

	if r.Collision.CheckCollision(newHead, s.Snake) != manager.NoCollision {
		s.Running = false
		s.Over = true
		return s, OutcomeCollided
	}

	if !r.Collision.IsFoodCollision(newHead, s.Food) {
		s.Snake = s.Snake.Move(newHead)
		return s, OutcomeMoved
	}

	s.Snake = s.Snake.Grow(newHead)
	s.Score += r.Reward
	food, err := r.Food.GenerateFood(s.Snake)
	if err != nil {
		// Only ErrBoardFull is possible: the snake covers the whole board.
		s.Running = false
		s.Over = true
		s.Food = newHead
		return s, OutcomeFilled
	}
	s.Food = food
	return s, OutcomeAte
}
