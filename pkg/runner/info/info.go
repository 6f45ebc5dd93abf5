package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/fitlog/pkg/config"
	"tableflip.dev/fitlog/pkg/printers"
	"tableflip.dev/fitlog/pkg/store"
)

// Info reports where settings came from and which drafts are stored.
type Info struct {
	Config      *config.Config
	Persistence store.Persistence
	JSON        bool
	Out         io.Writer
}

// Result is the JSON form of Info.
type Result struct {
	ConfigPath string         `json:"config_path_env,omitempty"`
	Config     *config.Config `json:"config"`
	TokenSet   bool           `json:"token_set"`
	Drafts     []store.Saved  `json:"drafts"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		return fmt.Errorf("info: no configuration loaded")
	}
	if n.Persistence == nil {
		return fmt.Errorf("info: failed to create persistence object")
	}
	res := Result{
		ConfigPath: os.Getenv("FITLOG_CONFIG_PATH"),
		Config:     n.Config,
		TokenSet:   n.Config.Token != "",
		Drafts:     n.Persistence.List(ctx),
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if res.ConfigPath != "" {
		_, _ = fmt.Fprintln(out, "FITLOG_CONFIG_PATH found on env, using", res.ConfigPath)
	} else {
		_, _ = fmt.Fprintln(out, "FITLOG_CONFIG_PATH env var not set")
	}
	file := n.Config.File
	if file == "" {
		file = "(none, using defaults and FITLOG_* env)"
	}
	_, _ = fmt.Fprintln(out, "Config.file: ", file)
	_, _ = fmt.Fprintln(out, "Config.api_url: ", n.Config.APIURL)
	_, _ = fmt.Fprintln(out, "Config.draft_path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.token set: ", res.TokenSet)
	_, _ = fmt.Fprintln(out, "")

	pp := printers.PrettyPrint{Out: out}
	pp.Title("Drafts")
	pp.Drafts(res.Drafts)
	return nil
}
