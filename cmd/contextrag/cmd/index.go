package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/context-rag/contextrag/internal/config"
	"github.com/context-rag/contextrag/internal/output"
	"github.com/context-rag/contextrag/pkg/contextrag"
)

// newIndexCmd creates the index command.
func newIndexCmd() *cobra.Command {
	var (
		configJSON string
		configFile string
		include    []string
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "index <storage-path>",
		Short: "Index the current directory into the given storage path",
		Long: `Index every text file under the current working directory that
matches the include patterns (and no exclude pattern) into the index at
the given storage path.

The run configuration comes from --config / --config-file, or is built
from the --include/--exclude flags. The result is printed to stdout as
JSON: {"indexed_files", "total_chunks", "processing_time_ms"}.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storagePath := args[0]

			cfgJSON, err := resolveConfigJSON(storagePath, configJSON, configFile, include, exclude)
			if err != nil {
				return err
			}

			payload, err := contextrag.IndexDirectoryContext(cmd.Context(), storagePath, cfgJSON)
			if err != nil {
				return err
			}

			output.New(cmd.OutOrStdout()).Raw(payload)
			return nil
		},
	}

	cmd.Flags().StringVar(&configJSON, "config", "", "Run configuration as inline JSON")
	cmd.Flags().StringVar(&configFile, "config-file", "", "Path to a run configuration JSON file")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Include patterns (e.g. *.md, src/)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Exclude patterns (substring match)")
	cmd.MarkFlagsMutuallyExclusive("config", "config-file")

	return cmd
}

// resolveConfigJSON turns the command flags into the run configuration
// JSON the library API expects. Inline JSON and a config file are passed
// through untouched; flag-built configs inherit the storage path argument.
func resolveConfigJSON(storagePath, configJSON, configFile string, include, exclude []string) (string, error) {
	if configJSON != "" {
		return configJSON, nil
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return "", fmt.Errorf("failed to read config file: %w", err)
		}
		return string(data), nil
	}

	if include == nil {
		return "", fmt.Errorf("no include patterns: pass --include, --config, or --config-file")
	}

	cfg := config.IndexConfig{
		Include:     include,
		Exclude:     exclude,
		StoragePath: storagePath,
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
