package app

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"spiral/internal/auth"
	"spiral/internal/domain"
	"spiral/internal/journal"
	"spiral/internal/logger"
	"spiral/internal/setup"
	"spiral/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config   domain.ConfigStore
	Sessions domain.SessionStore
	Entries  domain.EntryStore
	Auth     domain.Authenticator
	Setup    *setup.Sequencer
	Journal  *journal.Service
	Log      *slog.Logger

	closers []func() error
}

// NewWire constructs the dependency graph from cfg. It creates the home
// directory when missing.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log, closeLog, err := logger.Setup(logger.Config{Home: cfg.Home, Debug: cfg.Debug})
	if err != nil {
		// Logging is best-effort; the CLI still works with a discard logger.
		closeLog = func() error { return nil }
	}

	fileStore := store.NewFileStore(cfg.Home)

	entryStore, err := store.OpenEntryStore(filepath.Join(cfg.Home, "entries.db"))
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	authClient := auth.NewHTTP(cfg.AuthURL, httpClient)

	return &Wire{
		Config:   fileStore,
		Sessions: fileStore,
		Entries:  entryStore,
		Auth:     authClient,
		Setup:    setup.New(fileStore, fileStore, authClient),
		Journal:  journal.New(entryStore),
		Log:      log,
		closers:  []func() error{entryStore.Close, closeLog},
	}, nil
}

// Close releases the wire's resources, returning the first error.
func (w *Wire) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
