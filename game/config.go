package game

import (
	"errors"
	"fmt"

	"torus-snake/game/types"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

type Config struct {
	GridSize int
	Speed    int    // initial tick interval, ms
	Seed     uint64 // food RNG seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		GridSize: types.GridSize,
		Speed:    types.DefaultSpeed,
	}
}

func (c Config) Validate() error {
	if c.GridSize < types.MinGridSize {
		return fmt.Errorf("grid size %d below minimum %d: %w", c.GridSize, types.MinGridSize, ErrInvalidConfig)
	}
	if c.Speed < types.MinSpeed || c.Speed > types.MaxSpeed {
		return fmt.Errorf("speed %dms outside [%d,%d]: %w", c.Speed, types.MinSpeed, types.MaxSpeed, ErrInvalidConfig)
	}
	return nil
}
