package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <analysis-id>",
	Short: "Delete one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	deleteConfigPath string
	deleteStorePath  string
	deleteDBURL      string
)

func init() {
	deleteCmd.Flags().StringVar(&deleteConfigPath, "config", "", "Path to JSON config file")
	deleteCmd.Flags().StringVar(&deleteStorePath, "store", "", "Path to the JSON history file")
	deleteCmd.Flags().StringVar(&deleteDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", args[0], err)
	}

	cfg, err := loadEffectiveConfig(deleteConfigPath, config.Config{
		StorePath:   deleteStorePath,
		DatabaseURL: deleteDBURL,
	})
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
