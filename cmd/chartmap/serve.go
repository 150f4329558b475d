package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/chart-mapper/internal/api"
	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mapping API",
		Long: `Start the JSON HTTP API.

Endpoints:
  POST   /api/mappings/suggest                keyword suggestions
  POST   /api/mappings/suggest-learned        full pipeline with learned history
  GET    /api/companies/{companyId}/mappings  accepted mappings of a company
  PUT    /api/companies/{companyId}/mappings  replace a company's mappings
  DELETE /api/companies/{companyId}/mappings  remove a company's mappings
  DELETE /api/mappings/{id}                   remove one mapping
  GET    /api/catalog                         canonical fields
  GET    /healthz                             liveness and database check`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	server := api.NewServer(store, api.Config{
		Rules:               rules,
		Catalog:             catalog.Default(),
		Logger:              slog.Default(),
		Version:             version,
		SimilarityThreshold: cfg.Learning.SimilarityThreshold,
		RequestTimeout:      cfg.Server.WriteTimeout,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving mapping API",
			"addr", cfg.Server.Addr,
			"database", cfg.Database.Path,
			"version", version)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
