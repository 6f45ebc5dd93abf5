// Package config resolves fitlog settings from a .fitlog config file, the
// environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL    = "http://localhost:8000"
	defaultDraftPath = "~/.fitlog.d"
	defaultLogLevel  = "warn"
	defaultTimeout   = 15 * time.Second
)

// Config holds the resolved client settings.
type Config struct {
	APIURL    string        `json:"api_url"`
	Token     string        `json:"-"`
	DraftPath string        `json:"draft_path"`
	LogLevel  string        `json:"log_level"`
	Timeout   time.Duration `json:"timeout"`
	// File is the config file viper read, empty when none was found.
	File string `json:"file,omitempty"`
}

// BasePath satisfies store.Config.
func (c *Config) BasePath() string {
	return c.DraftPath
}

// Load reads configuration. It looks for .fitlog.yaml in $FITLOG_CONFIG_PATH,
// the working directory, and $HOME, then overlays FITLOG_* environment
// variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("draft_path", defaultDraftPath)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("timeout", defaultTimeout)
	v.SetConfigName(".fitlog") // .yaml is implicit
	v.SetEnvPrefix("FITLOG")
	v.AutomaticEnv()

	if override := os.Getenv("FITLOG_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	draftPath, err := homedir.Expand(v.GetString("draft_path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand draft_path: %w", err)
	}

	cfg := &Config{
		APIURL:    v.GetString("api_url"),
		Token:     v.GetString("token"),
		DraftPath: draftPath,
		LogLevel:  v.GetString("log_level"),
		Timeout:   v.GetDuration("timeout"),
		File:      v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("config: api_url is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api_url %q is not an absolute URL", c.APIURL)
	}
	if c.DraftPath == "" {
		return errors.New("config: draft_path is required")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}
