package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	Step       time.Duration
	ActionRate float64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	// Games
	Games      int
	BestScore  int
	TotalLines int
	Locks      int
	Dropped    int
	Clears     [tetris.MaxClearSize + 1]int
	Dealt      map[string]int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Record is a tetris.Listener that tallies finished games.
func (r *Report) Record(ev tetris.Event) {
	switch ev.Type {
	case tetris.EventLocked:
		r.Locks++
		r.TotalLines += ev.Lines
		r.Dropped += ev.Dropped
		if ev.Lines < len(r.Clears) {
			r.Clears[ev.Lines]++
		}
	case tetris.EventGameOver:
		r.Games++
		r.BestScore = max(r.BestScore, ev.Best)
	}
}

// Collect copies the deal counts of the engine's current game.
func (r *Report) Collect(engine *tetris.Engine) {
	r.Dealt = make(map[string]int, len(tetris.AllKinds))
	for _, k := range tetris.AllKinds {
		r.Dealt[k.String()] = engine.Stats().Dealt(k)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame Step:** {{.Step}}
- **Bot Action Rate:** {{printf "%.2f" .ActionRate}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Run Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Games Finished:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Locks:** {{.Locks}}
- **Lines Cleared:** {{.TotalLines}}
- **Cells Dropped Above Board:** {{.Dropped}}
{{range $n, $count := .Clears}}- {{$n}}-line locks: {{$count}}
{{end}}
## Last Game Deals
{{range $kind, $count := .Dealt}}- {{$kind}}: {{$count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
