package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func init() {
	homedir.DisableCache = true
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FITLOG_CONFIG_PATH", dir)
	t.Setenv("HOME", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("expected default api url, got %q", cfg.APIURL)
	}
	if cfg.DraftPath != filepath.Join(dir, ".fitlog.d") {
		t.Fatalf("expected draft path expanded under home, got %q", cfg.DraftPath)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FITLOG_CONFIG_PATH", dir)
	t.Setenv("HOME", dir)

	body := "api_url: https://fit.example.com\ntoken: from-file\ntimeout: 3s\n"
	if err := os.WriteFile(filepath.Join(dir, ".fitlog.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FITLOG_TOKEN", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "https://fit.example.com" {
		t.Fatalf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.Token != "from-env" {
		t.Fatalf("expected env to override file token, got %q", cfg.Token)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	good := Config{APIURL: "http://localhost:8000", DraftPath: "/tmp/x", LogLevel: "info", Timeout: time.Second}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(c *Config){
		"relative url": func(c *Config) { c.APIURL = "localhost" },
		"no draft":     func(c *Config) { c.DraftPath = "" },
		"bad level":    func(c *Config) { c.LogLevel = "loud" },
		"zero timeout": func(c *Config) { c.Timeout = 0 },
	}
	for name, mutate := range cases {
		c := good
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
