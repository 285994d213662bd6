// Command blockfall-soak plays headless games with a random bot and prints a
// report of the engine's timing and outcomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", 0, "Stop after this many finished games; zero runs for the full duration.")
	seed := flag.Uint64("seed", 1, "Seed for the piece sequence and the bot.")
	step := flag.Duration("step", 16*time.Millisecond, "Simulated time per frame.")
	actionRate := flag.Float64("action-rate", 0.3, "Chance the bot acts on a given frame.")
	configPath := flag.String("config", "", "Path to a TOML config file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting blockfall soak...")

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Step:           *step,
		ActionRate:     *actionRate,
		GCPauseMetrics: *gcPauseMetrics,
	}

	engine := tetris.NewEngine(tetris.WithRules(cfg.TetrisRules()), tetris.WithSeed(*seed))
	engine.AddListener(report.Record)

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&BotSystem{
		Rng:  rand.New(rand.NewPCG(*seed, *seed+1)),
		Rate: *actionRate,
	})
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(&RestartSystem{})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *games > 0 && report.Games >= *games {
				break Loop
			}
			updateStart := time.Now()
			scheduler.Once(*step)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = scheduler.Stats().FrameCount
	report.UpdateTime.Finalize()
	report.Collect(engine)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
