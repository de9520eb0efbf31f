package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	RunE:  runHistory,
}

var (
	historyConfigPath string
	historyStorePath  string
	historyDBURL      string
)

func init() {
	historyCmd.Flags().StringVar(&historyConfigPath, "config", "", "Path to JSON config file")
	historyCmd.Flags().StringVar(&historyStorePath, "store", "", "Path to the JSON history file")
	historyCmd.Flags().StringVar(&historyDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(historyConfigPath, config.Config{
		StorePath:   historyStorePath,
		DatabaseURL: historyDBURL,
	})
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, corrupted, err := st.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No saved analyses.")
	}
	for _, record := range records {
		role := record.Role
		if role == "" {
			role = "—"
		}
		fmt.Fprintf(out, "%s  %s  %-30s %-25s score %d/100\n",
			record.ID, record.CreatedAt.Format("2006-01-02 15:04"),
			record.Profile.Name, role, record.FinalScore)
	}
	if corrupted > 0 {
		fmt.Fprintf(out, "\nSkipped %d corrupted entr%s.\n", corrupted, pluralY(corrupted))
	}
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
