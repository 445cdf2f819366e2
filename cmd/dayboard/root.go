package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/storage"
)

// rootOptions are the persistent flags; non-empty values override config.
type rootOptions struct {
	configPath string
	dataPath   string
	backend    string
	logLevel   string
	logPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "dayboard",
		Short: "A day-planner kanban board for the terminal",
		Long: `dayboard keeps tasks on a three-column board (To Do, In Progress, Done)
filed under a calendar day or a named subject. Running it without a
subcommand opens the interactive board.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.toml")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "database file (sqlite) or directory (file backend)")
	cmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend: sqlite or file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "log file path, - for stderr")

	cmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newRmCmd(opts),
		newMoveCmd(opts),
		newBumpCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

type app struct {
	cfg    config.Config
	logger *log.Logger
	logs   io.Closer
	store  *storage.TaskStore
}

func (o *rootOptions) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.dataPath != "" {
		cfg.DataPath = o.dataPath
	}
	if o.backend != "" {
		cfg.Backend = strings.ToLower(o.backend)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logPath != "" {
		cfg.LogPath = o.logPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openApp(opts *rootOptions) (*app, error) {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}
	logger, logs, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(cfg.Backend, cfg.StorePath(), cfg.StorageKey, logger)
	if err != nil {
		_ = logs.Close()
		return nil, err
	}
	logger.Info("store opened", "backend", cfg.Backend, "path", store.Path(), "key", store.Key())
	return &app{cfg: cfg, logger: logger, logs: logs, store: store}, nil
}

func (a *app) Close() error {
	return errors.Join(a.store.Close(), a.logs.Close())
}

func (a *app) planner(opts ...planner.Option) *planner.Planner {
	base := []planner.Option{
		planner.WithLogger(a.logger),
		planner.WithUserName(a.cfg.UserName),
	}
	return planner.New(a.store, append(base, opts...)...)
}

// resolveID accepts a full task id or a unique prefix of one.
func resolveID(tasks []model.Task, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("task id is required")
	}
	var matches []string
	for _, t := range tasks {
		if t.ID == ref {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", planner.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}
}
