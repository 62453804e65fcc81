package engine

//go:generate go tool mockgen -destination=mock_runner_test.go -package=engine . Clock,InputSource

import (
	"context"
	"sync"
	"time"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/logging"
)

// Clock supplies monotonic time since the host started
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the wall clock's monotonic reading
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when advanced
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// InputSource produces the input snapshot for the frame at now
type InputSource interface {
	Poll(now time.Duration) input.Snapshot
}

// InputFunc adapts a function to InputSource
type InputFunc func(now time.Duration) input.Snapshot

func (f InputFunc) Poll(now time.Duration) input.Snapshot {
	return f(now)
}

// Runner drives a Game at a fixed rate from a clock and an input source
type Runner struct {
	game     *Game
	clock    Clock
	input    InputSource
	renderer entity.Renderer
	logger   *logging.Logger

	interval time.Duration
	last     time.Duration
	started  bool
}

// NewRunner creates a runner ticking at the game's configured rate. renderer
// may be nil.
func NewRunner(game *Game, clock Clock, src InputSource, renderer entity.Renderer, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	rate := game.Config.Rules.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &Runner{
		game:     game,
		clock:    clock,
		input:    src,
		renderer: renderer,
		logger:   logger,
		interval: time.Second / time.Duration(rate),
	}
}

// Tick steps the game once using the time elapsed since the previous tick.
// The first tick uses the nominal interval.
func (r *Runner) Tick() (Removals, error) {
	now := r.clock.Now()
	deltaTime := r.interval.Seconds()
	if r.started {
		deltaTime = (now - r.last).Seconds()
	}
	r.last = now
	r.started = true

	removed, err := r.game.Step(Tick{
		Delta: deltaTime,
		Now:   now,
		Input: r.input.Poll(now),
	})
	if r.renderer != nil {
		r.game.Render(r.renderer)
	}
	return removed, err
}

// Run ticks until the round ends, maxTicks ticks have run (when positive),
// a step fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, maxTicks int) error {
	ctx = logging.WithCorrelationID(ctx, r.game.MatchID)
	r.game.Start()
	r.logger.Info(ctx, "runner started", "interval", r.interval.String(), "round", r.game.Round)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for ticks := 0; maxTicks <= 0 || ticks < maxTicks; ticks++ {
		select {
		case <-ctx.Done():
			r.logger.Info(ctx, "runner stopped", "ticks", ticks)
			return ctx.Err()
		case <-ticker.C:
		}

		if _, err := r.Tick(); err != nil {
			r.logger.Error(ctx, "tick failed", err, "ticks", ticks)
			return err
		}
		if r.game.GetStatus() == GameStatusEnded {
			r.logger.Info(ctx, "round over", "ticks", ticks+1, "winner", r.game.Snapshot().WinnerID)
			return nil
		}
	}
	return nil
}
