package game

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Loop drives a Game from a single timer. The timer is re-armed after each
// tick with the speed read from the game at that moment, and immediately
// when the game signals a speed, pause or restart change. While the game is
// paused or ended the timer stays disarmed.
type Loop struct {
	game   *Game
	logger *slog.Logger

	wg      sync.WaitGroup
	mutex   sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func NewLoop(g *Game, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		game:   g,
		logger: logger,
	}
}

// Start launches the loop goroutine. Calling Start twice is a no-op.
func (l *Loop) Start(ctx context.Context) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.running {
		return
	}
	l.running = true

	ctx, l.cancel = context.WithCancel(ctx)
	l.wg.Add(1)
	go l.run(ctx)
}

// Stop cancels the loop and waits for it to exit.
func (l *Loop) Stop() {
	l.mutex.Lock()
	if !l.running {
		l.mutex.Unlock()
		return
	}
	l.running = false
	cancel := l.cancel
	l.mutex.Unlock()

	cancel()
	l.wg.Wait()
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	l.logger.Info("game loop started", "speed", l.game.Speed())
	defer l.logger.Info("game loop stopped")

	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	l.arm(timer)

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.game.wake:
			l.arm(timer)
		case <-timer.C:
			l.game.Tick()
			l.arm(timer)
		}
	}
}

func (l *Loop) arm(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	if l.game.Phase() == Running {
		timer.Reset(l.game.Speed())
	}
}
