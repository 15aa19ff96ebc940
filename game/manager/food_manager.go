package manager

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// ErrBoardFull is returned when the snake covers every cell.
var ErrBoardFull = errors.New("no free cell for food")

// sampleFactor bounds rejection sampling to grid cells * sampleFactor draws
// before falling back to enumerating the free cells.
const sampleFactor = 4

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager seeds its own source so placement is reproducible per seed.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood draws a uniformly random cell not occupied by snake.
func (fm *FoodManager) GenerateFood(snake entity.Snake) (types.Point, error) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < fm.grid.Cells()*sampleFactor; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Contains(food) {
			return food, nil
		}
	}

	// Nearly full board: pick among what is left.
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

// FreeCells lists every cell not covered by snake, row-major.
func (fm *FoodManager) FreeCells(snake entity.Snake) []types.Point {
	occupied := Occupancy(snake)
	free := make([]types.Point, 0, fm.grid.Cells()-occupied.Size())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// Occupancy returns the set of cells covered by snake.
func Occupancy(snake entity.Snake) mapset.Set[types.Point] {
	set := mapset.New[types.Point]()
	for _, p := range snake.Body {
		set.Put(p)
	}
	return set
}
