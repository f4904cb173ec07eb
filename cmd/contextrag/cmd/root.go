// Package cmd provides the CLI commands for contextrag.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/context-rag/contextrag/internal/config"
	"github.com/context-rag/contextrag/internal/logging"
	"github.com/context-rag/contextrag/pkg/version"
)

// Logging flags
var (
	debugMode      bool
	logLevel       string
	loggingCleanup func()
)

// NewRootCmd creates the root command for the contextrag CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contextrag",
		Short: "Text indexing for retrieval pipelines",
		Long: `ContextRAG indexes a directory tree of text files into a local
full-text index for retrieval-augmented generation pipelines.

Files are filtered by include/exclude patterns, split into line-aligned
chunks of at most 1000 characters, fingerprinted, and committed in a
single index session.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("contextrag version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging installs the default logger. Everything logs to stderr so
// stdout stays reserved for command results. Level precedence:
// CONTEXTRAG_LOG_LEVEL, then --debug/--log-level, then .contextrag.yaml.
func startLogging(_ *cobra.Command, _ []string) error {
	fc, err := config.LoadProject(".")
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	fallback := logLevel
	if debugMode {
		fallback = "debug"
	}
	if fallback == "" {
		fallback = config.LogLevel(fc, "info")
	} else if lvl := os.Getenv("CONTEXTRAG_LOG_LEVEL"); lvl != "" {
		fallback = lvl
	}

	cfg := logging.DefaultConfig()
	cfg.Level = fallback

	cleanup, err := logging.SetupDefault(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	loggingCleanup = cleanup

	slog.Debug("logging_configured", slog.String("level", cfg.Level))
	return nil
}

// stopLogging flushes and releases the logging target.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command. SIGINT/SIGTERM cancel the run; a
// cancelled indexing run aborts without committing.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}
