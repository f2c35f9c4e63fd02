package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"adder/internal/calculation"
)

// ErrNonFiniteOperand is returned when a seeded operand is Inf or NaN.
var ErrNonFiniteOperand = errors.New("operand must be finite")

// Config is the process configuration, read from the environment at startup.
type Config struct {
	Addr            string        `env:"ADDER_ADDR"             envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"ADDER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        zapcore.Level `env:"ADDER_LOG_LEVEL"        envDefault:"info"`
	OTLPLogs        bool          `env:"ADDER_OTLP_LOGS"        envDefault:"false"`

	// Seed for the calculation store. Operands cannot change after startup.
	Left  float64          `env:"ADDER_LEFT"  envDefault:"3"`
	Right float64          `env:"ADDER_RIGHT" envDefault:"1"`
	Sign  calculation.Sign `env:"ADDER_SIGN"  envDefault:"+"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := checkFinite("ADDER_LEFT", cfg.Left); err != nil {
		return Config{}, err
	}
	if err := checkFinite("ADDER_RIGHT", cfg.Right); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// InitialState is the calculation the store is seeded with.
func (c Config) InitialState() calculation.State {
	return calculation.State{
		Left:  c.Left,
		Right: c.Right,
		Sign:  c.Sign,
	}
}

func checkFinite(name string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%s=%g: %w", name, v, ErrNonFiniteOperand)
	}
	return nil
}
