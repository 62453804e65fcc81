// cmd/spacewars/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	engorender "github.com/opd-ai/go-spacewars/pkg/render/engo"
)

func main() {
	// Logs go to stderr so the ASCII view on stdout stays readable.
	logger := logging.NewLoggerWithWriter(os.Stderr)
	ctx := context.Background()

	configPath := flag.String("config", "spacewars.yaml", "Path to match configuration (.yaml, .yml or .json)")
	preset := flag.String("preset", "", "Arena preset to apply (classic, widescreen, low_gravity)")
	createDefault := flag.Bool("default", false, "Write the default configuration to -config and exit")
	headless := flag.Bool("headless", false, "Run without a window using scripted pilots")
	maxTicks := flag.Int("ticks", 3600, "Headless: ticks before an unfinished round is called a draw (0 = no limit)")
	rounds := flag.Int("rounds", 0, "Headless: stop after this many rounds (0 = play until a champion)")
	viewWidth := flag.Int("view", 80, "Headless: ASCII view width in columns (0 = no view)")
	width := flag.Int("width", 1020, "Window width")
	height := flag.Int("height", 760, "Window height")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	fontURL := flag.String("font", "", "TTF font for the scoreboard")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	matchConfig, err := config.LoadConfigWithPreset(*configPath, *preset)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
			"preset", *preset,
		)
		os.Exit(1)
	}

	if err := config.ApplyEnvironmentOverrides(matchConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	game, err := engine.NewGame(matchConfig, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	if *headless {
		opts := headlessOptions{
			MaxTicks:  *maxTicks,
			Rounds:    *rounds,
			ViewWidth: *viewWidth,
			Out:       os.Stdout,
		}
		if err := runHeadless(ctx, game, opts, logger); err != nil && !errors.Is(err, errInterrupted) {
			logger.Error(ctx, "Match aborted", err)
			os.Exit(1)
		}
		return
	}

	scene := engorender.NewGameScene(game, logger)
	scene.FontURL = *fontURL

	logger.Info(ctx, "Opening window",
		"width", *width,
		"height", *height,
		"match_id", game.MatchID,
	)
	engo.Run(engo.RunOptions{
		Title:      "Spacewars",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}, scene)
}
