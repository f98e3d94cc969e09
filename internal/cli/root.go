// Package cli implements the command-line interface for gvc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kilupskalvis/gvc/internal/config"
	"github.com/kilupskalvis/gvc/internal/logging"
	"github.com/kilupskalvis/gvc/internal/store"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
	Logger *zap.Logger
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
	if c.Logger != nil {
		c.Logger.Sync()
	}
}

// initContext locates the repository, loads config, and opens the store
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		exitError("invalid log level: %v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st, Logger: logger}
}

// newLogger builds the command logger. --verbose forces debug tracing
// regardless of the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if rootVerbose {
		level = "debug"
	}
	return logging.New(level)
}

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "gvc",
	Short: "A minimal version control system",
	Long: `gvc is a minimal git-like version control system for local files.
Stage files, record commits, create branches, and inspect the state of
the working directory against the latest commit.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug tracing")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(branchCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
