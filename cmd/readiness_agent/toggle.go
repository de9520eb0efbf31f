package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/scoring"
	"github.com/jonathan/placement-readiness/internal/types"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <analysis-id> <skill>",
	Short: "Flip a skill between 'know' and 'practice' and rescore",
	Args:  cobra.ExactArgs(2),
	RunE:  runToggle,
}

var (
	toggleConfigPath string
	toggleStorePath  string
	toggleDBURL      string
)

func init() {
	toggleCmd.Flags().StringVar(&toggleConfigPath, "config", "", "Path to JSON config file")
	toggleCmd.Flags().StringVar(&toggleStorePath, "store", "", "Path to the JSON history file")
	toggleCmd.Flags().StringVar(&toggleDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")

	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", args[0], err)
	}
	skill := args[1]

	cfg, err := loadEffectiveConfig(toggleConfigPath, config.Config{
		StorePath:   toggleStorePath,
		DatabaseURL: toggleDBURL,
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

	updated := scoring.ToggleConfidence(*record, skill)
	stored, err := st.Update(cmd.Context(), &updated)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	if stored == nil {
		return fmt.Errorf("analysis %s not found", id)
	}

	state := types.ConfidencePractice
	if c, ok := stored.SkillConfidence[skill]; ok {
		state = c
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s → %s, score %d/100 (base %d)\n",
		skill, state, stored.FinalScore, stored.BaseScore)
	return nil
}
