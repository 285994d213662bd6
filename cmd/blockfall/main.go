// Command blockfall runs the game in an Ebiten window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/sharecard"
	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence; zero uses the config value.")
	scale := flag.Float64("scale", 0, "Window scale; zero uses the config value.")
	noAudio := flag.Bool("no-audio", false, "Disable sound.")
	debugUI := flag.Bool("debug-ui", false, "Show the ImGui debug panels.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	cfg.Audio = cfg.Audio && !*noAudio
	cfg.DebugUI = cfg.DebugUI || *debugUI

	keeper, err := highscore.NewKeeper(highscore.NewFileStore(cfg.ScoreFile))
	if err != nil {
		log.Printf("Best score unavailable, starting from zero: %v", err)
	}
	keeper.OnError = func(err error) {
		log.Printf("Failed to save best score: %v", err)
	}

	player := sound.NewPlayer()
	if cfg.Audio {
		if err := player.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	defer player.Close()

	opts := append(cfg.EngineOptions(),
		tetris.WithBestScore(keeper.Best()),
		tetris.WithListener(keeper.Listen),
		tetris.WithListener(player.Listen),
		tetris.WithListener(logEvent),
	)
	engine := tetris.NewEngine(opts...)

	game := &Game{
		scheduler: loop.NewScheduler(engine),
	}

	width, height := windowSize(cfg.Scale)
	var debug *debugui.System
	if cfg.DebugUI {
		game.backend = debugui_ebiten.NewBackend("Blockfall", width, height)
		debug = &debugui.System{Visible: true}
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	gravity := &loop.GravitySystem{}
	if debug != nil {
		debug.Panels = []debugui.Panel{
			debugui.NewSchedulerPanel(game.scheduler, 120),
			&debugui.EnginePanel{Gravity: gravity},
		}
		game.scheduler.Register(debug)
	}
	game.scheduler.Register(&InputSystem{
		Layout: &game.layout,
		Debug:  debug,
		OnShare: func(s tetris.Session) {
			shareCard(cfg.ShareDir, s)
		},
	})
	game.scheduler.Register(gravity)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

func logEvent(ev tetris.Event) {
	switch ev.Type {
	case tetris.EventLinesCleared:
		log.Printf("Cleared %d lines for %d points", ev.Lines, ev.Points)
	case tetris.EventGameOver:
		log.Printf("Game over: score %d, best %d (new best: %t)", ev.Score, ev.Best, ev.NewBest)
	}
}

func shareCard(dir string, s tetris.Session) {
	path, err := sharecard.Save(dir, sharecard.Card{Score: s.Score, Best: s.Best}, time.Now())
	if err != nil {
		log.Printf("Failed to save share card: %v", err)
		return
	}
	log.Printf("Share card saved to %s", path)
}
