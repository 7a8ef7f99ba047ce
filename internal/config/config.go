package config

import (
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Config stores runtime configuration for the server.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	// DatabaseURL empty keeps the action log in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	StepDuration  time.Duration              `env:"STEP_DURATION" envDefault:"30s"`
	SwapDuration  time.Duration              `env:"SWAP_DURATION" envDefault:"0s"`
	SideSelection engine.SideSelectionPolicy `env:"SIDE_SELECTION_POLICY" envDefault:"LOSER"`
	FinishSwap    engine.FinishSwapPolicy    `env:"FINISH_SWAP_POLICY" envDefault:"REFEREE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	WSOriginPatterns []string      `env:"WS_ORIGIN_PATTERNS" envSeparator:","`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.StepDuration <= 0 {
		return errors.Newf("STEP_DURATION must be positive, got %s", c.StepDuration)
	}
	if c.SwapDuration < 0 {
		return errors.Newf("SWAP_DURATION must not be negative, got %s", c.SwapDuration)
	}
	if !c.SideSelection.Valid() {
		return errors.Newf("unknown SIDE_SELECTION_POLICY %q", c.SideSelection)
	}
	if !c.FinishSwap.Valid() {
		return errors.Newf("unknown FINISH_SWAP_POLICY %q", c.FinishSwap)
	}
	return nil
}

// Rules is the per-room rule set every new room is created with.
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		StepDuration:  c.StepDuration,
		SwapDuration:  c.SwapDuration,
		SideSelection: c.SideSelection,
		FinishSwap:    c.FinishSwap,
	}
}
