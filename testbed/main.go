package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/fitlog/pkg/api"
	"tableflip.dev/fitlog/pkg/api/apitest"
	"tableflip.dev/fitlog/pkg/bucket"
	"tableflip.dev/fitlog/pkg/detail"
	"tableflip.dev/fitlog/pkg/logging"
	"tableflip.dev/fitlog/pkg/runner/ui"
	"tableflip.dev/fitlog/pkg/tui"
	"tableflip.dev/fitlog/pkg/ui/calendar"
)

const demoToken = "testbed"

type options struct {
	month    string
	logLevel string
	addr     string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the month browser against an in-memory backend with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.month, "month", time.Now().Format("2006-01"), "month to open (e.g. 2024-03)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level for the client")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sample backend so the fitlog CLI can talk to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:8000", "listen address")
	rootCmd.AddCommand(serveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seeded(month time.Time) *apitest.Server {
	srv := apitest.NewServer(demoToken)
	seedSample(srv, month)
	return srv
}

func parseMonth(s string) (time.Time, error) {
	m, ok := calendar.ParseMonth(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q", s)
	}
	return calendar.FirstOf(m), nil
}

func run(ctx context.Context, opts options) error {
	month, err := parseMonth(opts.month)
	if err != nil {
		return err
	}
	log, err := logging.New(opts.logLevel)
	if err != nil {
		return err
	}
	srv := seeded(month)
	defer srv.Close()

	client, err := api.New(srv.URL, demoToken, api.WithLogger(log))
	if err != nil {
		return err
	}
	r := bucket.NewRefresher(bucket.NewAggregator(client, log), log)
	u := ui.UI{Options: tui.Options{
		Refresher: r,
		Actions:   detail.NewActions(client, r, log),
		Month:     month,
		Log:       log,
	}}
	return u.Do(ctx)
}

func serve(ctx context.Context, opts options) error {
	month, err := parseMonth(opts.month)
	if err != nil {
		return err
	}
	srv := seeded(month)
	defer srv.Close()

	hs := &http.Server{Addr: opts.addr, Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdown)
	}()

	fmt.Printf("serving sample data for %s on http://%s\n", calendar.Title(month), opts.addr)
	fmt.Printf("  export FITLOG_API_URL=http://%s FITLOG_TOKEN=%s\n", opts.addr, demoToken)
	if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
