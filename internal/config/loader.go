package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// LoadOption tweaks Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	envFiles []string
	logger   *zap.Logger
}

// WithEnvFiles loads the given .env files before reading the environment.
// Missing files are skipped. Real environment variables win over .env values.
func WithEnvFiles(paths ...string) LoadOption {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithLogger reports loading progress.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Load merges defaults, path (when non-empty) and FORMCHECK_ variables, then
// validates the result.
func Load(path string, options ...LoadOption) (*Config, error) {
	opts := loadOptions{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	for _, envFile := range opts.envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
		opts.logger.Debug("env file loaded", zap.String("file", envFile))
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
		opts.logger.Debug("config file loaded", zap.String("file", path))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env overlay: %w", err)
	}

	// Keys missing from every layer keep their defaults.
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	opts.logger.Info("config loaded",
		zap.String("listen_addr", cfg.HTTP.ListenAddr),
		zap.Duration("reset_delay", cfg.Form.ResetDelay),
		zap.String("theme", cfg.Theme.File),
	)
	return &cfg, nil
}

// envKey maps FORMCHECK_HTTP__LISTEN_ADDR to http.listen_addr.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ToLower(strings.ReplaceAll(s, "__", "."))
}
