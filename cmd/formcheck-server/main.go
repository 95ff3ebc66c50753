package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/internal/logging"
	"github.com/goliatone/go-formcheck/internal/metrics"
	"github.com/goliatone/go-formcheck/pkg/page"
	"github.com/goliatone/go-formcheck/pkg/server"
	"github.com/goliatone/go-formcheck/pkg/styles"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before the environment (optional)")
	flag.Parse()

	boot := logging.Bootstrap()
	cfg, err := config.Load(*configPath, config.WithEnvFiles(*envFile), config.WithLogger(boot))
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}

	logger, err := logging.Build(cfg.Log.Level, cfg.Log.Env)
	if err != nil {
		boot.Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	st, err := styles.Load(cfg.Theme.File, cfg.Theme.Variant)
	if err != nil {
		logger.Fatal("load theme", zap.Error(err))
	}

	var engineOpts []page.Option
	if cfg.Form.TemplateDir != "" {
		engineOpts = append(engineOpts, page.WithBaseDir(cfg.Form.TemplateDir))
	}
	engine, err := page.New(engineOpts...)
	if err != nil {
		logger.Fatal("create page engine", zap.Error(err))
	}

	data := page.DefaultData()
	data.Title = cfg.Form.Title
	data.Heading = cfg.Form.Heading
	data.SubmitLabel = cfg.Form.SubmitLabel

	srv, err := server.New(engine,
		server.WithLogger(logger),
		server.WithMetrics(metrics.New()),
		server.WithData(data),
		server.WithStyles(st),
		server.WithValidatorOptions(cfg.ValidatorOptions()...),
		server.WithAllowedOrigins(cfg.HTTP.AllowedOrigins...),
	)
	if err != nil {
		logger.Fatal("create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, cfg.HTTP.ListenAddr, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
