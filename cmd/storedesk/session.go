package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"storedesk/internal/config"
	applog "storedesk/internal/log"
	"storedesk/internal/store"
)

// session is an opened store plus the log file behind it.
type session struct {
	Config  config.Config
	Store   *store.Store
	logFile io.Closer
}

func (s *session) Close() {
	if err := s.Store.Close(); err != nil {
		applog.Error("db.close", err, nil)
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// loadConfig applies command line flags over config.Load.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, &exitError{code: ExitConfigError, err: err}
	}
	if dbPath != "" {
		cfg.DBDSN = dbPath
	}
	if cmd.Flags().Changed("foreign-keys") {
		cfg.ForeignKeys = foreignKeys
	}
	if noSeed {
		cfg.Seed = false
	}
	return cfg, nil
}

// setupLogging points the standard logger at path. Stdout belongs to the
// menu, so logs never go there; an empty path discards them.
func setupLogging(path string) io.Closer {
	log.SetOutput(io.Discard)
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] could not open log file %s: %v\n", path, err)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(0)
	return f
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logFile := setupLogging(cfg.LogFile)
	applog.StartSession()
	applog.Info("config.loaded", map[string]any{"db": cfg.DBDSN, "log_file": cfg.LogFile, "foreign_keys": cfg.ForeignKeys, "seed": cfg.Seed})

	st, err := store.Open(cfg)
	if err != nil {
		applog.Error("db.open", err, map[string]any{"db": cfg.DBDSN})
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, err
	}
	return &session{Config: cfg, Store: st, logFile: logFile}, nil
}
