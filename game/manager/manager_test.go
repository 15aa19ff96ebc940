package manager

import (
	"errors"
	"testing"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

func TestNextHeadWrapsAllEdges(t *testing.T) {
	cm := NewCollisionManager(types.Square(types.GridSize))
	tests := []struct {
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{types.Point{X: 19, Y: 10}, types.Right, types.Point{X: 0, Y: 10}},
		{types.Point{X: 0, Y: 10}, types.Left, types.Point{X: 19, Y: 10}},
		{types.Point{X: 5, Y: 0}, types.Up, types.Point{X: 5, Y: 19}},
		{types.Point{X: 5, Y: 19}, types.Down, types.Point{X: 5, Y: 0}},
		{types.Point{X: 8, Y: 10}, types.Right, types.Point{X: 9, Y: 10}},
	}
	for _, tt := range tests {
		if got := cm.NextHead(tt.head, tt.dir); got != tt.want {
			t.Errorf("NextHead(%v, %v) = %v, want %v", tt.head, tt.dir, got, tt.want)
		}
	}
}

func TestCheckCollisionIncludesTail(t *testing.T) {
	cm := NewCollisionManager(types.Square(types.GridSize))
	snake := entity.NewSnake(types.StartSnake())

	if got := cm.CheckCollision(types.Point{X: 6, Y: 10}, snake); got != SelfCollision {
		t.Errorf("tail cell: got %v, want self", got)
	}
	if got := cm.CheckCollision(types.Point{X: 9, Y: 10}, snake); got != NoCollision {
		t.Errorf("free cell: got %v, want none", got)
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Square(types.GridSize)
	snake := entity.NewSnake(types.StartSnake())

	for seed := uint64(1); seed <= 200; seed++ {
		fm := NewFoodManager(grid, seed)
		food, err := fm.GenerateFood(snake)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if snake.Contains(food) {
			t.Errorf("seed %d: food %v on snake", seed, food)
		}
		if !grid.Contains(food) {
			t.Errorf("seed %d: food %v out of bounds", seed, food)
		}
	}
}

func TestGenerateFoodDeterministicPerSeed(t *testing.T) {
	grid := types.Square(types.GridSize)
	snake := entity.NewSnake(types.StartSnake())

	a, _ := NewFoodManager(grid, 42).GenerateFood(snake)
	b, _ := NewFoodManager(grid, 42).GenerateFood(snake)
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestGenerateFoodNearlyFullBoard(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	var body []types.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			body = append(body, types.Point{X: x, Y: y})
		}
	}
	snake := entity.NewSnake(body)

	food, err := NewFoodManager(grid, 7).GenerateFood(snake)
	if err != nil {
		t.Fatalf("GenerateFood: %v", err)
	}
	if food != (types.Point{X: 2, Y: 1}) {
		t.Errorf("food = %v, want the only free cell (2,1)", food)
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	snake := entity.NewSnake([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})

	_, err := NewFoodManager(grid, 1).GenerateFood(snake)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("err = %v, want ErrBoardFull", err)
	}
}

func TestFreeCells(t *testing.T) {
	grid := types.Square(types.GridSize)
	snake := entity.NewSnake(types.StartSnake())
	free := NewFoodManager(grid, 1).FreeCells(snake)
	if len(free) != grid.Cells()-snake.Len() {
		t.Errorf("free cells = %d, want %d", len(free), grid.Cells()-snake.Len())
	}
}

func TestStateManagerHistory(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxScores+5; i++ {
		sm.AddToHistory(i * 5)
	}
	stats := sm.Stats()
	if stats.GamesPlayed != maxScores+5 {
		t.Errorf("games = %d", stats.GamesPlayed)
	}
	if stats.HighScore != (maxScores+4)*5 {
		t.Errorf("high score = %d", stats.HighScore)
	}
	if len(stats.ScoreHistory) != maxScores {
		t.Errorf("history length = %d, want %d", len(stats.ScoreHistory), maxScores)
	}
	if stats.ScoreHistory[0] != 25 {
		t.Errorf("oldest kept score = %d, want 25", stats.ScoreHistory[0])
	}
}

func TestStateManagerEmpty(t *testing.T) {
	stats := NewStateManager().Stats()
	if stats.AverageScore != 0 || stats.HighScore != 0 || stats.GamesPlayed != 0 {
		t.Errorf("fresh stats = %+v", stats)
	}
}
