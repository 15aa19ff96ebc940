package game

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// Game owns the mutable state of one board. Every entry point runs to
// completion under mu, so ticks and input never interleave mid-update.
type Game struct {
	mu        sync.Mutex
	grid      types.Grid
	rules     Rules
	food      *manager.FoodManager
	stats     *manager.StateManager
	state     State
	runID     uuid.UUID
	startTime time.Time
	logger    *slog.Logger

	subs    map[int]chan Frame
	nextSub int

	// wake tells the loop to re-arm its timer (speed, pause or restart changed).
	wake chan struct{}
}

type Option func(*Game)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := types.Square(cfg.GridSize)
	food := manager.NewFoodManager(grid, seed)
	g := &Game{
		grid: grid,
		rules: Rules{
			Collision: manager.NewCollisionManager(grid),
			Food:      food,
			Reward:    types.FoodReward,
		},
		food:   food,
		stats:  manager.NewStateManager(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		subs:   make(map[int]chan Frame),
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state.Speed = cfg.Speed
	g.resetLocked()
	return g, nil
}

// resetLocked puts the board back to its initial layout, keeping the speed.
func (g *Game) resetLocked() {
	snake := entity.NewSnake(types.StartSnake())
	food, err := g.food.GenerateFood(snake)
	if err != nil {
		// Config validation guarantees room for the start snake plus food.
		panic(err)
	}
	g.state = State{
		Snake:     snake,
		Direction: types.Right,
		Food:      food,
		Running:   true,
		Speed:     g.state.Speed,
	}
	g.runID = uuid.New()
	g.startTime = time.Now()
	g.logger.Info("game started", "run", g.runID, "food", food, "speed", g.state.Speed)
}

// Tick advances the game once. It is a no-op unless the game is running.
func (g *Game) Tick() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	next, outcome := Advance(g.state, g.rules)
	if outcome == OutcomeIdle {
		return outcome
	}
	g.state = next

	switch outcome {
	case OutcomeAte:
		g.logger.Debug("food eaten", "run", g.runID, "score", next.Score, "length", next.Snake.Len(), "food", next.Food)
	case OutcomeCollided, OutcomeFilled:
		g.stats.AddToHistory(next.Score)
		g.logger.Info("game over",
			"run", g.runID,
			"reason", outcome,
			"score", next.Score,
			"length", next.Snake.Len(),
			"duration", time.Since(g.startTime).Round(time.Millisecond),
		)
	}
	g.publishLocked()
	return outcome
}

// Steer commits dir unless it reverses the latest committed direction.
func (g *Game) Steer(dir types.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !dir.Valid() || dir.IsOpposite(g.state.Direction) {
		return false
	}
	if dir != g.state.Direction {
		g.state.Direction = dir
		g.publishLocked()
	}
	return true
}

// TogglePause flips between running and paused. An ended game stays ended.
func (g *Game) TogglePause() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Over {
		return Ended
	}
	g.state.Running = !g.state.Running
	g.logger.Debug("pause toggled", "run", g.runID, "phase", g.state.Phase())
	g.publishLocked()
	g.signalWake()
	return g.state.Phase()
}

// Restart begins a fresh game. A game abandoned with points still counts
// toward the session statistics.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.Over && g.state.Score > 0 {
		g.stats.AddToHistory(g.state.Score)
	}
	g.resetLocked()
	g.publishLocked()
	g.signalWake()
}

// SetSpeed sets the tick interval in ms, clamped to [MinSpeed, MaxSpeed].
func (g *Game) SetSpeed(ms int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms = types.ClampSpeed(ms)
	if ms == g.state.Speed {
		return ms
	}
	g.state.Speed = ms
	g.publishLocked()
	g.signalWake()
	return ms
}

func (g *Game) Speed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Duration(g.state.Speed) * time.Millisecond
}

func (g *Game) Direction() types.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Direction
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Phase()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) RunID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.runID.String()
}

func (g *Game) Stats() manager.GameStats {
	return g.stats.Stats()
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.state
	s.Snake = s.Snake.Clone()
	return s
}

// Frame renders the current state for a rendering surface.
func (g *Game) Frame() Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frameLocked()
}

func (g *Game) frameLocked() Frame {
	f := Render(g.state, g.grid)
	f.Best = g.stats.GetHighScore()
	f.Games = g.stats.GamesPlayed()
	f.RunID = g.runID.String()
	return f
}

// Subscribe returns a channel that receives a Frame after every state
// change, starting with the current one. Slow readers only miss
// intermediate frames: the newest frame always replaces an unread one.
func (g *Game) Subscribe() (<-chan Frame, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextSub
	g.nextSub++
	ch := make(chan Frame, 1)
	ch <- g.frameLocked()
	g.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (g *Game) publishLocked() {
	if len(g.subs) == 0 {
		return
	}
	f := g.frameLocked()
	for _, ch := range g.subs {
		select {
		case ch <- f:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- f:
			default:
			}
		}
	}
}

func (g *Game) signalWake() {
	select {
	case g.wake <- struct{}{}:
	default:
	}
}
