// cmd/spacewars/headless.go
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	"github.com/opd-ai/go-spacewars/pkg/render"
)

var errInterrupted = errors.New("interrupted")

type headlessOptions struct {
	MaxTicks  int
	Rounds    int
	ViewWidth int
	Out       io.Writer
}

// runHeadless plays rounds until a champion emerges, the round limit is hit or
// the process is signalled.
func runHeadless(ctx context.Context, game *engine.Game, opts headlessOptions, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case sig := <-sigChan:
			logger.Info(ctx, "Shutting down", "signal", sig.String())
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		defer cancel()
		return playMatch(ctx, game, opts, logger)
	})
	return g.Wait()
}

func newViewRenderer(game *engine.Game, opts headlessOptions, logger *logging.Logger) entity.Renderer {
	if opts.ViewWidth <= 0 || opts.Out == nil {
		return render.NewNullRenderer(logger)
	}
	view := render.FitTerminalRenderer(opts.Out, game.Config.PlayfieldBounds(), opts.ViewWidth)
	view.ClearScreen = true
	return view
}

// playMatch runs rounds back to back on the system clock
func playMatch(ctx context.Context, game *engine.Game, opts headlessOptions, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	stats := watchMatch(game.EventBus)
	defer stats.Close()

	renderer := newViewRenderer(game, opts, logger)

	for {
		// Each round runs on a fresh clock starting at zero, so the pilots'
		// fire times must start over with it.
		pilot := newDemoPilot(game.Config.Players)
		runner := engine.NewRunner(game, engine.NewSystemClock(), pilot, renderer, logger)
		if err := runner.Run(ctx, opts.MaxTicks); err != nil {
			return err
		}
		if game.GetStatus() != engine.GameStatusEnded {
			// Out of ticks: the round is a draw.
			game.Stop()
		}

		state := game.Snapshot()
		logger.Info(ctx, "Round finished",
			"round", state.Round,
			"winner", state.WinnerID,
			"ticks", state.Tick,
			"wins", state.Wins,
		)

		if champion, ok := game.Champion(); ok {
			shots, eliminations := stats.Totals()
			logger.Info(ctx, "Match won",
				"player", champion.ID,
				"name", champion.Name,
				"rounds", state.Round,
				"shots", shots,
				"eliminations", eliminations,
			)
			return nil
		}
		if opts.Rounds > 0 && state.Round >= opts.Rounds {
			return nil
		}
		game.Reset()
	}
}

// matchStats counts shots and eliminations from the game's event bus
type matchStats struct {
	mu           sync.Mutex
	shots        int
	eliminations map[event.Cause]int
	subs         []*event.Subscription
}

func watchMatch(bus *event.Bus) *matchStats {
	s := &matchStats{eliminations: make(map[event.Cause]int)}
	s.subs = append(s.subs,
		bus.Subscribe(event.ProjectileFired, func(event.Event) {
			s.mu.Lock()
			s.shots++
			s.mu.Unlock()
		}),
		bus.Subscribe(event.RocketEliminated, func(e event.Event) {
			if re, ok := e.(*event.RocketEvent); ok {
				s.mu.Lock()
				s.eliminations[re.Cause]++
				s.mu.Unlock()
			}
		}),
	)
	return s
}

// Totals returns shots fired and eliminations by cause
func (s *matchStats) Totals() (int, map[event.Cause]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	eliminations := make(map[event.Cause]int, len(s.eliminations))
	for cause, n := range s.eliminations {
		eliminations[cause] = n
	}
	return s.shots, eliminations
}

func (s *matchStats) Close() {
	for _, sub := range s.subs {
		sub.Cancel()
	}
}

// demoPilot flies every rocket on a fixed script: full thrust, a slow turn
// and a shot every fireEvery.
type demoPilot struct {
	players   []config.PlayerConfig
	fireEvery time.Duration
	lastFire  map[string]time.Duration
}

func newDemoPilot(players []config.PlayerConfig) *demoPilot {
	return &demoPilot{
		players:   players,
		fireEvery: 400 * time.Millisecond,
		lastFire:  make(map[string]time.Duration),
	}
}

// Poll implements engine.InputSource
func (p *demoPilot) Poll(now time.Duration) input.Snapshot {
	snap := input.NewSnapshot()
	for i, player := range p.players {
		c := player.Controls
		snap.Press(c.Accelerate, false)

		// Alternate turning direction every few seconds, mirrored per player.
		turnLeft := (now/(3*time.Second))%2 == 0
		if i%2 == 1 {
			turnLeft = !turnLeft
		}
		if turnLeft {
			snap.Press(c.RotateLeft, false)
		} else {
			snap.Press(c.RotateRight, false)
		}

		last, fired := p.lastFire[player.ID]
		if !fired || now-last >= p.fireEvery {
			p.lastFire[player.ID] = now
			snap.Press(c.Fire, true)
		}
	}
	return snap
}
