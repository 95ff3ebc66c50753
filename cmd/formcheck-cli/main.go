package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/internal/logging"
	"github.com/goliatone/go-formcheck/pkg/presenter/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	repeat := flag.Bool("repeat", false, "offer to validate another entry after each reset")
	inline := flag.Bool("inline", false, "reject invalid answers inside the prompt")
	verbose := flag.Bool("verbose", false, "log validator activity to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = logging.Build("debug", "dev"); err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	session, err := tui.NewSession(
		tui.WithTheme(tui.AutoTheme()),
		tui.WithRepeat(*repeat),
		tui.WithInlineValidation(*inline),
		tui.WithLogger(logger),
		tui.WithValidatorOptions(cfg.ValidatorOptions()...),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entries, err := session.Run(ctx)
	if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	if err != nil {
		log.Fatalf("Session failed: %v", err)
	}
	if len(entries) == 0 {
		return
	}

	out, err := yaml.Marshal(entries)
	if err != nil {
		log.Fatalf("Failed to encode entries: %v", err)
	}
	fmt.Print(string(out))
}
