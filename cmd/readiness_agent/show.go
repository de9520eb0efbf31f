package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>",
	Short: "Show one saved analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	showConfigPath string
	showStorePath  string
	showDBURL      string
	showJSON       bool
)

func init() {
	showCmd.Flags().StringVar(&showConfigPath, "config", "", "Path to JSON config file")
	showCmd.Flags().StringVar(&showStorePath, "store", "", "Path to the JSON history file")
	showCmd.Flags().StringVar(&showDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the raw record as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", args[0], err)
	}

	cfg, err := loadEffectiveConfig(showConfigPath, config.Config{
		StorePath:   showStorePath,
		DatabaseURL: showDBURL,
	})
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	record, err := st.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}
	if record == nil {
		return fmt.Errorf("analysis %s not found", id)
	}

	if showJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintSummary(record)
	printer.PrintSkills(record.Skills)
	printer.PrintRounds(record.Rounds)
	printer.PrintQuestions(record.Questions)
	return nil
}
