package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/analyzer"
	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/ingestion"
	"github.com/jonathan/placement-readiness/internal/observability"
	"github.com/jonathan/placement-readiness/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the readiness package",
	Long:  "Analyze a job description from a text file, URL, or stdin. Produces skill signals, a readiness score, a round map, a checklist, a 7-day plan, and likely questions, and saves the result to the history store.",
	RunE:  runAnalyze,
}

var (
	analyzeTextFile   string
	analyzeURL        string
	analyzeCompany    string
	analyzeRole       string
	analyzeConfigPath string
	analyzeStorePath  string
	analyzeDBURL      string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTextFile, "text-file", "t", "", "Path to text file containing the job description")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeStorePath, "store", "", "Path to the JSON history file")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis output")

	rootCmd.AddCommand(analyzeCmd)
}

// readJDText resolves the job description from file, URL, or stdin.
func readJDText(cmd *cobra.Command, cfg config.Config) (string, error) {
	switch {
	case cfg.JDFile != "" && cfg.JDURL != "":
		return "", fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	case cfg.JDFile != "":
		text, meta, err := ingestion.FromFile(cfg.JDFile)
		if err != nil {
			return "", err
		}
		if cfg.Verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Read %d chars from %s\n", meta.Chars, meta.Source)
		}
		return text, nil
	case cfg.JDURL != "":
		text, meta, err := ingestion.FromURL(cmd.Context(), cfg.JDURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return "", err
		}
		if cfg.Verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d chars from %s\n", meta.Chars, meta.Source)
		}
		return text, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read job description from stdin: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		JDFile:      analyzeTextFile,
		JDURL:       analyzeURL,
		Company:     analyzeCompany,
		Role:        analyzeRole,
		StorePath:   analyzeStorePath,
		DatabaseURL: analyzeDBURL,
		UseBrowser:  analyzeUseBrowser,
		Verbose:     analyzeVerbose,
	}
	cfg, err := loadEffectiveConfig(analyzeConfigPath, flags)
	if err != nil {
		return err
	}

	jdText, err := readJDText(cmd, cfg)
	if err != nil {
		return err
	}

	if warning, ok := analyzer.ShortJDWarning(jdText); ok {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	an, err := buildAnalyzer(cfg)
	if err != nil {
		return err
	}

	record, err := an.Analyze(types.AnalyzeRequest{
		Company: cfg.Company,
		Role:    cfg.Role,
		JDText:  jdText,
	})
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(cmd.Context(), record); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintSummary(record)
	if cfg.Verbose {
		printer.PrintSkills(record.Skills)
		printer.PrintRounds(record.Rounds)
		printer.PrintQuestions(record.Questions)
	}

	return nil
}
