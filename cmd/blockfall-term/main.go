// Command blockfall-term runs the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sharecard"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	debug := flag.Bool("debug", false, "Write a debug log under logs/.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence; zero uses the config value.")
	noAudio := flag.Bool("no-audio", false, "Disable sound.")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(*configPath, *seed, !*noAudio); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, audio bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	keeper, err := highscore.NewKeeper(highscore.NewFileStore(cfg.ScoreFile))
	if err != nil {
		log.Printf("Best score unavailable, starting from zero: %v", err)
	}
	keeper.OnError = func(err error) {
		log.Printf("Failed to save best score: %v", err)
	}

	player := sound.NewPlayer()
	if cfg.Audio && audio {
		if err := player.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	opts := append(cfg.EngineOptions(),
		tetris.WithBestScore(keeper.Best()),
		tetris.WithListener(keeper.Listen),
		tetris.WithListener(player.Listen),
	)
	engine := tetris.NewEngine(opts...)

	actions := make(chan tetris.Action, 64)
	shares := make(chan struct{}, 1)

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.InputSystem{Actions: actions})
	scheduler.Register(&ShareSystem{
		Requests: shares,
		Save: func(s tetris.Session) {
			path, err := sharecard.Save(cfg.ShareDir, sharecard.Card{Score: s.Score, Best: s.Best}, time.Now())
			if err != nil {
				log.Printf("Failed to save share card: %v", err)
				return
			}
			log.Printf("Share card saved to %s", path)
		},
	})
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(&RenderSystem{Screen: screen})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go pollEvents(screen, actions, shares, cancel)

	log.Printf("Starting terminal game at %d fps", cfg.FrameRate)
	scheduler.Run(ctx, cfg.FrameInterval())

	stats := scheduler.Stats()
	log.Printf("Exiting after %d frames", stats.FrameCount)
	return nil
}
