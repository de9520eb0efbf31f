package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the readiness HTTP API",
	RunE:  runServe,
}

var (
	servePort         int
	serveConfigPath   string
	serveStorePath    string
	serveDBURL        string
	serveKeywordTable string
	serveCompanyTable string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveStorePath, "store", "", "Path to the JSON history file")
	serveCmd.Flags().StringVar(&serveDBURL, "database-url", "", "PostgreSQL connection URL (overrides --store)")
	serveCmd.Flags().StringVar(&serveKeywordTable, "keyword-table", "", "Path to a JSON keyword table override")
	serveCmd.Flags().StringVar(&serveCompanyTable, "company-table", "", "Path to a JSON company table override")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(serveConfigPath, config.Config{
		StorePath:    serveStorePath,
		DatabaseURL:  serveDBURL,
		KeywordTable: serveKeywordTable,
		CompanyTable: serveCompanyTable,
	})
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	an, err := buildAnalyzer(cfg)
	if err != nil {
		st.Close()
		return err
	}

	return server.New(server.Config{Port: servePort}, st, an).Start()
}
