package commands

import (
	"net/http"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/config"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/store"
)

// deps are what most commands need, resolved from configuration.
type deps struct {
	cfg    *config.Config
	log    logging.Logger
	client *api.Client
	drafts store.Persistence
}

// loadConfig and newLogger are replaced in tests.
var (
	loadConfig = config.Load
	newLogger  = func(level string) (logging.Logger, error) { return logging.New(level) }
)

func loadDeps() (*deps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	client, err := api.New(cfg.APIURL, cfg.Token,
		api.WithLogger(log),
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		return nil, err
	}
	drafts, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &deps{cfg: cfg, log: log, client: client, drafts: drafts}, nil
}

func (d *deps) close() {
	_ = d.log.Sync()
}
