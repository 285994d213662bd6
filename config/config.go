// Package config loads the game settings shared by the front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/plus3/blockfall/tetris"
)

// Duration is a time.Duration that reads TOML strings such as "900ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Rules mirrors tetris.Rules with TOML names.
type Rules struct {
	DropIntervalStart Duration `toml:"drop_interval_start"`
	DropIntervalMin   Duration `toml:"drop_interval_min"`
	DropAcceleration  Duration `toml:"drop_acceleration"`
}

// Config holds every setting a front end reads.
type Config struct {
	Rules Rules `toml:"rules"`
	// Seed fixes the piece sequence; zero picks a random seed.
	Seed uint64 `toml:"seed"`
	// ScoreFile is where the best score is kept.
	ScoreFile string `toml:"score_file"`
	// ShareDir receives share card images.
	ShareDir string `toml:"share_dir"`
	Audio    bool   `toml:"audio"`
	DebugUI  bool   `toml:"debug_ui"`
	// Scale multiplies the window cell size.
	Scale float64 `toml:"scale"`
	// FrameRate drives the terminal and headless loops.
	FrameRate int `toml:"frame_rate"`
}

// Default returns the built-in settings.
func Default() Config {
	rules := tetris.DefaultRules()
	return Config{
		Rules: Rules{
			DropIntervalStart: Duration{rules.DropIntervalStart},
			DropIntervalMin:   Duration{rules.DropIntervalMin},
			DropAcceleration:  Duration{rules.DropAcceleration},
		},
		ScoreFile: "blockfall-best.toml",
		ShareDir:  ".",
		Audio:     true,
		Scale:     1,
		FrameRate: 60,
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Rules.DropIntervalMin.Duration <= 0 {
		errs = append(errs, errors.New("rules.drop_interval_min must be positive"))
	}
	if c.Rules.DropIntervalStart.Duration < c.Rules.DropIntervalMin.Duration {
		errs = append(errs, errors.New("rules.drop_interval_start must not be below rules.drop_interval_min"))
	}
	if c.Rules.DropAcceleration.Duration < 0 {
		errs = append(errs, errors.New("rules.drop_acceleration must not be negative"))
	}
	if c.Scale <= 0 {
		errs = append(errs, errors.New("scale must be positive"))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, errors.New("frame_rate must be positive"))
	}
	if c.ScoreFile == "" {
		errs = append(errs, errors.New("score_file must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// TetrisRules converts the rules section for the engine.
func (c Config) TetrisRules() tetris.Rules {
	return tetris.Rules{
		DropIntervalStart: c.Rules.DropIntervalStart.Duration,
		DropIntervalMin:   c.Rules.DropIntervalMin.Duration,
		DropAcceleration:  c.Rules.DropAcceleration.Duration,
	}
}

// FrameInterval returns the time between frames at the configured rate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// EngineOptions returns the engine options implied by the settings.
func (c Config) EngineOptions() []tetris.Option {
	opts := []tetris.Option{tetris.WithRules(c.TetrisRules())}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSeed(c.Seed))
	}
	return opts
}
