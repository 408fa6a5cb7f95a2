package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpggio/worklog/internal/config"
	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/output"
	"github.com/rpggio/worklog/internal/sqlite"
)

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	logFile *os.File
	db      *sqlite.DB

	projects *project.Service
	activity *activity.Service
}

func newApp(cfg config.Config) *app {
	return &app{cfg: cfg}
}

// open wires storage and services. logWriter receives logs unless a log
// file is configured.
func (a *app) open(ctx context.Context, logWriter io.Writer) error {
	if a.projects != nil {
		return nil
	}

	if a.cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(a.cfg.Log.Path)
		if err != nil {
			output.Warning(os.Stderr, "log file %s: %v; logging to stderr", a.cfg.Log.Path, err)
		} else {
			a.logFile = file
			logWriter = fileWriter
		}
	}
	a.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(a.cfg.Log.Level),
	}))

	if err := ensureDBDir(a.cfg.DB.Path); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.Open(a.cfg.DB.Path)
	if err != nil {
		return err
	}
	a.db = db

	provider, err := commit.NewProvider(a.cfg.Git.Provider, a.cfg.Git.Limit)
	if err != nil {
		return err
	}

	a.projects = project.NewService(sqlite.NewKVRepository(db), provider, a.logger)
	if err := a.projects.Load(ctx); err != nil {
		return err
	}
	a.activity = activity.NewService(a.projects, a.logger, nil)
	a.logger.Debug("store opened", "db", a.cfg.DB.Path, "git_provider", a.cfg.Git.Provider)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
	a.projects = nil
	a.activity = nil
}

// target returns the project named by --project, or the selected one.
func (a *app) target(name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return a.projects.CurrentProject()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
