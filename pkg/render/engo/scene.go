// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/logging"
)

// DefaultRestartDelay is how long a finished round stays on screen
const DefaultRestartDelay = 2 * time.Second

// SimulationSystem steps the game once per engo frame and draws the result.
// Finished rounds restart after RestartDelay until a champion is decided.
type SimulationSystem struct {
	game     *engine.Game
	input    engine.InputSource
	renderer entity.Renderer
	logger   *logging.Logger

	RestartDelay time.Duration

	elapsed time.Duration
	endedAt time.Duration
	ended   bool
	halted  bool
}

// NewSimulationSystem creates a system driving game. renderer may be nil.
func NewSimulationSystem(game *engine.Game, src engine.InputSource, renderer entity.Renderer, logger *logging.Logger) *SimulationSystem {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SimulationSystem{
		game:         game,
		input:        src,
		renderer:     renderer,
		logger:       logger,
		RestartDelay: DefaultRestartDelay,
	}
}

// Halted reports whether a step failed
func (s *SimulationSystem) Halted() bool {
	return s.halted
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the simulation by dt seconds
func (s *SimulationSystem) Update(dt float32) {
	s.elapsed += time.Duration(float64(dt) * float64(time.Second))
	if s.halted {
		return
	}

	switch s.game.GetStatus() {
	case engine.GameStatusWaiting:
		s.game.Start()
	case engine.GameStatusEnded:
		s.waitForRestart()
		s.draw()
		return
	}

	if _, err := s.game.Step(engine.Tick{
		Delta: float64(dt),
		Now:   s.elapsed,
		Input: s.input.Poll(s.elapsed),
	}); err != nil {
		s.logger.Error(context.Background(), "simulation halted", err, "round", s.game.Round)
		s.halted = true
	} else if s.game.GetStatus() == engine.GameStatusEnded {
		s.ended = true
		s.endedAt = s.elapsed
	}
	s.draw()
}

func (s *SimulationSystem) waitForRestart() {
	if _, ok := s.game.Champion(); ok || s.game.Err() != nil {
		return
	}
	if !s.ended {
		s.ended = true
		s.endedAt = s.elapsed
		return
	}
	if s.elapsed-s.endedAt < s.RestartDelay {
		return
	}

	s.ended = false
	s.game.Reset()
	s.game.Start()
}

func (s *SimulationSystem) draw() {
	if s.renderer != nil {
		s.game.Render(s.renderer)
	}
}

// GameScene hosts a local two-player match in an engo window
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger
	style  Style

	// FontURL is an optional TTF file for the HUD
	FontURL string

	camera   *Camera
	renderer *EngoRenderer
	keyboard *Keyboard
	hud      *HUDSystem
	sim      *SimulationSystem
}

// NewGameScene creates a scene for game. The game should not be started.
func NewGameScene(game *engine.Game, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		game:   game,
		logger: logger,
		style:  DefaultStyle(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if scene.FontURL == "" {
		return
	}
	if err := engo.Files.Load(scene.FontURL); err != nil {
		scene.logger.Warn(context.Background(), "HUD font not loaded", "url", scene.FontURL, "error", err.Error())
		scene.FontURL = ""
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	cfg := scene.game.Config

	common.SetBackground(scene.style.Background)
	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	keyboard, err := NewKeyboard(cfg.Players, EngoButtons{})
	if err != nil {
		panic("Failed to bind controls: " + err.Error())
	}
	keyboard.Register()
	scene.keyboard = keyboard

	playerIDs := make([]string, len(cfg.Players))
	for i, p := range cfg.Players {
		playerIDs[i] = p.ID
	}
	scene.camera = NewCamera(cfg.PlayfieldBounds(), engo.GameWidth(), engo.GameHeight())
	scene.renderer = NewEngoRenderer(renderSystem, scene.camera, scene.style, playerIDs)

	scene.sim = NewSimulationSystem(scene.game, keyboard, scene.renderer, scene.logger)
	world.AddSystem(scene.sim)

	scene.hud = NewHUDSystem(scene.game, renderSystem)
	if scene.FontURL != "" {
		font := &common.Font{URL: scene.FontURL, FG: color.White, Size: 18}
		if err := font.CreatePreloaded(); err == nil {
			scene.hud.SetFont(font)
		} else {
			scene.logger.Warn(context.Background(), "HUD font unusable", "error", err.Error())
		}
	}
	world.AddSystem(scene.hud)

	scene.game.Start()
	scene.logger.Info(context.Background(), "scene ready",
		"width", engo.GameWidth(),
		"height", engo.GameHeight(),
		"keys", len(keyboard.Keys()),
	)
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	scene.game.Stop()
}
