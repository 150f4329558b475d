// Package api serves the mapping suggestion and persistence endpoints over JSON HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"github.com/Veraticus/chart-mapper/internal/classification"
	"github.com/Veraticus/chart-mapper/internal/engine"
	"github.com/Veraticus/chart-mapper/internal/learning"
	"github.com/Veraticus/chart-mapper/internal/model"
)

// Store is the persistence surface the handlers need.
type Store interface {
	learning.HistoryStore
	GetMappings(ctx context.Context, tenantID string) ([]model.AcceptedMapping, error)
	ReplaceMappings(ctx context.Context, tenantID string, mappings []model.AcceptedMapping) ([]model.AcceptedMapping, error)
	DeleteMappingsForTenant(ctx context.Context, tenantID string) (int64, error)
	DeleteMapping(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Config tunes a Server. Zero values fall back to the built-in defaults.
type Config struct {
	Rules               *classification.RuleSet
	Catalog             *catalog.Catalog
	Logger              *slog.Logger
	Version             string
	SimilarityThreshold int
	RequestTimeout      time.Duration
}

// Server holds the engines and the store shared by every request.
type Server struct {
	store    Store
	catalog  *catalog.Catalog
	keywords *engine.Engine
	full     *engine.Engine
	logger   *slog.Logger
	version  string
	timeout  time.Duration
}

// NewServer builds a server over store.
func NewServer(store Store, cfg Config) *Server {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	full := engine.FullPipeline()
	if cfg.SimilarityThreshold > 0 {
		full.SimilarityThreshold = cfg.SimilarityThreshold
	}

	s := &Server{
		store:    store,
		catalog:  cfg.Catalog,
		keywords: engine.New(cfg.Rules, nil, engine.KeywordOnly()),
		full:     engine.New(cfg.Rules, store, full),
		logger:   cfg.Logger,
		version:  cfg.Version,
		timeout:  cfg.RequestTimeout,
	}

	opts := s.full.Options()
	s.logger.Info("Mapping engine ready",
		"code_ranges", opts.EnableCodeRanges,
		"keywords", opts.EnableKeywords,
		"learning", opts.EnableLearning,
		"similarity_threshold", opts.SimilarityThreshold,
		"catalog", s.catalog.Version())

	return s
}

// Handler returns the routed handler wrapped in the logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/mappings/suggest", s.handleSuggest)
	mux.HandleFunc("POST /api/mappings/suggest-learned", s.handleSuggestLearned)
	mux.HandleFunc("DELETE /api/mappings/{id}", s.handleDeleteMapping)

	mux.HandleFunc("GET /api/companies/{companyId}/mappings", s.handleListMappings)
	mux.HandleFunc("PUT /api/companies/{companyId}/mappings", s.handleReplaceMappings)
	mux.HandleFunc("DELETE /api/companies/{companyId}/mappings", s.handleClearMappings)

	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return RequestLogger(s.logger, Recoverer(mux))
}

// withTimeout bounds a suggestion batch by the configured request timeout.
func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
