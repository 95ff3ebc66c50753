// Package config loads formcheck settings from defaults, an optional .env
// file, an optional YAML file and FORMCHECK_ environment variables (highest
// precedence last). Env keys map "__" to "." so FORMCHECK_HTTP__LISTEN_ADDR
// sets http.listen_addr.
package config

import (
	"time"

	"github.com/goliatone/go-formcheck/pkg/validator"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORMCHECK_"

// Config is the merged configuration.
type Config struct {
	HTTP  HTTPConfig  `koanf:"http"`
	Form  FormConfig  `koanf:"form"`
	Theme ThemeConfig `koanf:"theme"`
	Log   LogConfig   `koanf:"log"`
}

// HTTPConfig covers the server listener.
type HTTPConfig struct {
	ListenAddr      string        `koanf:"listen_addr" validate:"required,hostname_port"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
}

// FormConfig covers the rendered form and the validator.
type FormConfig struct {
	Title       string             `koanf:"title" validate:"required"`
	Heading     string             `koanf:"heading"`
	SubmitLabel string             `koanf:"submit_label" validate:"required"`
	ResetDelay  time.Duration      `koanf:"reset_delay" validate:"gt=0"`
	Messages    validator.Messages `koanf:"messages"`
	TemplateDir string             `koanf:"template_dir" validate:"omitempty,dir"`
}

// ThemeConfig points at an optional theme manifest.
type ThemeConfig struct {
	File    string `koanf:"file" validate:"omitempty,file"`
	Variant string `koanf:"variant"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error dpanic panic fatal"`
	Env   string `koanf:"env" validate:"oneof=dev prod"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Form: FormConfig{
			Title:       "Form validation",
			Heading:     "Contact",
			SubmitLabel: "Validate",
			ResetDelay:  validator.DefaultResetDelay,
		},
		Log: LogConfig{
			Level: "info",
			Env:   "dev",
		},
	}
}

// ValidatorOptions converts the form section into validator options.
func (c Config) ValidatorOptions() []validator.Option {
	return []validator.Option{
		validator.WithResetDelay(c.Form.ResetDelay),
		validator.WithMessages(c.Form.Messages),
	}
}
