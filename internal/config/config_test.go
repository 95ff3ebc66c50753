package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/pkg/validator"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "formcheck.yaml", `http:
  listen_addr: "127.0.0.1:9000"
  allowed_origins: ["https://a.example"]
form:
  title: "Contact"
  reset_delay: 5s
  messages:
    invalid_email: "that is not an email"
log:
  level: debug
`)
	t.Setenv("FORMCHECK_HTTP__LISTEN_ADDR", "127.0.0.1:9100")
	t.Setenv("FORMCHECK_FORM__RESET_DELAY", "1500ms")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := config.Default()
	want.HTTP.ListenAddr = "127.0.0.1:9100"
	want.HTTP.AllowedOrigins = []string{"https://a.example"}
	want.Form.Title = "Contact"
	want.Form.ResetDelay = 1500 * time.Millisecond
	want.Form.Messages = validator.Messages{InvalidEmail: "that is not an email"}
	want.Log.Level = "debug"

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := len(cfg.ValidatorOptions()); got != 2 {
		t.Fatalf("expected 2 validator options, got %d", got)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "FORMCHECK_FORM__HEADING"
	t.Cleanup(func() { os.Unsetenv(key) })
	path := writeFile(t, ".env", key+"=From dotenv\n")

	cfg, err := config.Load("", config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env"), path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Form.Heading != "From dotenv" {
		t.Fatalf("expected heading from .env, got %q", cfg.Form.Heading)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"log level":   "log:\n  level: loud\n",
		"log env":     "log:\n  env: staging\n",
		"listen addr": "http:\n  listen_addr: \"nope\"\n",
		"reset delay": "form:\n  reset_delay: -1s\n",
		"theme file":  "theme:\n  file: /does/not/exist.yaml\n",
		"blank title": "form:\n  title: \"\"\n",
	}
	for name, content := range cases {
		path := writeFile(t, "formcheck.yaml", content)
		if _, err := config.Load(path); !errors.Is(err, config.ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected a load error, got %v", err)
	}
}
