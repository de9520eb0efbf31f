package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/placement-readiness/internal/analyzer"
	"github.com/jonathan/placement-readiness/internal/company"
	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/extraction"
	"github.com/jonathan/placement-readiness/internal/store"
)

// loadEffectiveConfig merges CLI-provided values over an optional config
// file and environment fallbacks.
func loadEffectiveConfig(configPath string, flags config.Config) (config.Config, error) {
	effective := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return effective, err
		}
		effective = effective.MergeWithDefaults(*fileCfg)
	}

	if effective.DatabaseURL == "" {
		effective.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if effective.StorePath == "" {
		effective.StorePath = os.Getenv("READINESS_STORE")
	}
	if effective.StorePath == "" {
		effective.StorePath = config.DefaultStorePath
	}

	if err := effective.Validate(); err != nil {
		return effective, err
	}
	return effective, nil
}

// openStore opens the Postgres store when a database URL is configured,
// otherwise the JSON file store.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	}
	return store.NewFileStore(cfg.StorePath)
}

// buildAnalyzer constructs the pipeline, honoring external table overrides.
func buildAnalyzer(cfg config.Config) (*analyzer.Analyzer, error) {
	extractor := extraction.NewDefaultExtractor()
	if cfg.KeywordTable != "" {
		entries, err := extraction.LoadKeywordTable(cfg.KeywordTable)
		if err != nil {
			return nil, err
		}
		extractor, err = extraction.NewExtractor(entries)
		if err != nil {
			return nil, fmt.Errorf("invalid keyword table: %w", err)
		}
	}

	classifier := company.NewDefaultClassifier()
	if cfg.CompanyTable != "" {
		table, err := company.LoadTable(cfg.CompanyTable)
		if err != nil {
			return nil, err
		}
		classifier = company.NewClassifier(table)
	}

	return analyzer.New(extractor, classifier), nil
}
