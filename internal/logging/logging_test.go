package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formcheck/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestBuild(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		logger, err := logging.Build("warn", env)
		if err != nil {
			t.Fatalf("%s: build: %v", env, err)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("%s: info should be disabled at warn level", env)
		}
		if !logger.Core().Enabled(zapcore.ErrorLevel) {
			t.Fatalf("%s: error should be enabled", env)
		}
	}
	if _, err := logging.Build("nope", "dev"); err == nil {
		t.Fatalf("expected error for bad level")
	}
	if logging.Bootstrap() == nil {
		t.Fatalf("bootstrap logger is nil")
	}
}
