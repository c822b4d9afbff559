package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/viper"

	"github.com/sgzs6721/lessonctl/internal/client"
	"github.com/sgzs6721/lessonctl/internal/config"
	"github.com/sgzs6721/lessonctl/internal/credentials"
	"github.com/sgzs6721/lessonctl/internal/session"
	"github.com/sgzs6721/lessonctl/internal/shared/logger"
)

// app bundles everything a command needs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	creds  *credentials.FileStore
	client *client.Client
}

// buildApp loads config and wires the client. Commands call this at the
// top of Run and bail out on error.
func buildApp() (*app, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithPath(cfgFile)
	} else {
		cfg, err = config.NewLoader().Load()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	level := cfg.LogLevel
	if viper.GetBool("verbose") {
		level = "debug"
	}
	log := logger.New(level, cfg.LogFormat)

	creds := credentials.NewFileStore(cfg.CredentialsPath)

	bus := session.New(log)
	bus.OnExpired(func(reason string) {
		if reason == "" {
			reason = "session expired"
		}
		fmt.Fprintf(os.Stderr, "Your session has expired (%s). Run 'lessonctl login' to sign in again.\n", reason)
	})

	c := client.New(cfg.APIURL, creds,
		client.WithLogger(log),
		client.WithSessionBus(bus),
		client.WithTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond),
		client.WithCacheTTL(time.Duration(cfg.CacheTTLMS)*time.Millisecond),
	)

	return &app{cfg: cfg, log: log, creds: creds, client: c}, nil
}

// campusID resolves the campus scope: flag first, then the persisted
// selector, then the config default.
func (a *app) campusID() int64 {
	if id := viper.GetInt64("campus_id"); id != 0 {
		return id
	}
	if id := a.creds.CampusID(); id != 0 {
		return id
	}
	return a.cfg.CampusID
}

// table returns a writer for aligned columnar output.
func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// fail prints the error and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
