package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/laws"
	"github.com/abhisek/uxlab/internal/logging"
	"github.com/abhisek/uxlab/internal/progress"
	"github.com/abhisek/uxlab/internal/store"
)

// env is everything a command needs from the local installation.
type env struct {
	store    *store.Store
	progress *progress.Store
	catalog  *laws.Catalog
	logger   *zap.Logger
}

// openEnv resolves paths from flags and environment, opens the database
// and loads progress and the law catalog.
func openEnv(cmd *cobra.Command) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	logger := newLogger(cmd, dbPath)

	catalog, err := laws.Load(resolveContentPath(cmd))
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("load laws: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Debug("environment ready",
		zap.String("db", dbPath),
		zap.Int("laws", catalog.Len()),
	)

	return &env{
		store:    st,
		progress: progress.Open(cmd.Context(), progress.NewKVStorage(st.KVRepo()), progress.Config{Logger: logger}),
		catalog:  catalog,
		logger:   logger,
	}, nil
}

// Close releases the database and flushes logs.
func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close database", zap.Error(err))
	}
	_ = e.logger.Sync()
}

// resolveContentPath returns --content, then UXLAB_CONTENT. Empty means the
// built-in catalog.
func resolveContentPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	return os.Getenv("UXLAB_CONTENT")
}

func newLogger(cmd *cobra.Command, dbPath string) *zap.Logger {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = logging.DefaultPath(dbPath)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(logging.Config{Path: path, Verbose: verbose})
}
