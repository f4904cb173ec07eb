package cmd

import (
	"github.com/spf13/cobra"

	"github.com/context-rag/contextrag/internal/output"
	"github.com/context-rag/contextrag/pkg/contextrag"
)

// newCreateCmd creates the create command.
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <storage-path>",
		Short: "Create an empty index at the given storage path",
		Long: `Create (or open) an index at the given storage path with the fixed
document schema. Fails if the path cannot be created, is held by another
session, or contains an unusable index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.New(cmd.OutOrStdout())

			msg, err := contextrag.CreateIndex(args[0])
			if err != nil {
				return err
			}

			out.Success(msg)
			return nil
		},
	}
}
