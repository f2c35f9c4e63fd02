package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"adder/internal/calculation"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("expected addr %q, got %q", ":8080", cfg.Addr)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected shutdown timeout 5s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.OTLPLogs {
		t.Fatal("expected OTLP log export to be off by default")
	}

	if got := cfg.InitialState(); got != calculation.DefaultState() {
		t.Fatalf("expected initial state %+v, got %+v", calculation.DefaultState(), got)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDER_ADDR", ":9090")
	t.Setenv("ADDER_LOG_LEVEL", "debug")
	t.Setenv("ADDER_LEFT", "5")
	t.Setenv("ADDER_RIGHT", "3")
	t.Setenv("ADDER_SIGN", "multiply")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr %q, got %q", ":9090", cfg.Addr)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("expected log level debug, got %s", cfg.LogLevel)
	}

	want := calculation.State{Left: 5, Right: 3, Sign: calculation.Times}
	if got := cfg.InitialState(); got != want {
		t.Fatalf("expected initial state %+v, got %+v", want, got)
	}
	if got := cfg.InitialState().Result(); got != 15 {
		t.Fatalf("expected result 15, got %g", got)
	}
}

func TestLoadRejectsUnknownSign(t *testing.T) {
	t.Setenv("ADDER_SIGN", "%")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unknown sign")
	}
	if !strings.Contains(err.Error(), calculation.ErrUnknownSign.Error()) {
		t.Fatalf("expected unknown sign error, got %v", err)
	}
}

func TestLoadRejectsNonFiniteOperands(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "ADDER_LEFT", value: "Inf"},
		{name: "ADDER_LEFT", value: "NaN"},
		{name: "ADDER_RIGHT", value: "-Inf"},
		{name: "ADDER_RIGHT", value: "NaN"},
	}

	for _, tc := range tests {
		t.Run(tc.name+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.name, tc.value)

			_, err := Load()
			if !errors.Is(err, ErrNonFiniteOperand) {
				t.Fatalf("expected ErrNonFiniteOperand, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.name) {
				t.Fatalf("expected error to name %s, got %v", tc.name, err)
			}
		})
	}
}
