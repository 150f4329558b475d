package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/config"
	"github.com/Veraticus/chart-mapper/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig builds the typed configuration from the global viper instance.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initStorage opens the database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// closeStorage closes the store and logs any failure.
func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// loadRules returns the configured rule file, or the built-in tables when none is set.
func loadRules(cfg *config.Config) (*classification.RuleSet, error) {
	if cfg.Rules.Path == "" {
		return classification.DefaultRuleSet(), nil
	}

	rules, err := classification.LoadRuleSet(cfg.Rules.Path, catalog.Default())
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded rule file",
		"path", cfg.Rules.Path,
		"version", rules.Version,
		"code_ranges", len(rules.CodeRanges),
		"keyword_rules", len(rules.KeywordRules))

	return rules, nil
}
