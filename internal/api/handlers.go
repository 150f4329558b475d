package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/engine"
	"github.com/Veraticus/chart-mapper/internal/model"
)

const maxBodyBytes = 10 << 20

// Request body keys.
const (
	keyAccounts          = "qbAccounts"
	keyAccountsWithClass = "qbAccountsWithClass"
	keyCompanyID         = "companyId"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type suggestResponse struct {
	Mappings []model.MappingSuggestion `json:"mappings"`
}

type mappingsRequest struct {
	Mappings []model.AcceptedMapping `json:"mappings"`
}

type mappingsResponse struct {
	CompanyID string                  `json:"companyId"`
	Mappings  []model.AcceptedMapping `json:"mappings"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type catalogResponse struct {
	Version string                 `json:"version"`
	Fields  []model.CanonicalField `json:"fields"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	accounts, err := accountsFrom(body, keyAccounts, keyAccountsWithClass)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.suggest(r.Context(), s.keywords, accounts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, suggestResponse{Mappings: result.Suggestions})
}

func (s *Server) handleSuggestLearned(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	accounts, err := accountsFrom(body, keyAccountsWithClass, keyAccounts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if company := companyFrom(body); company != "" {
		ctx = common.WithLogger(ctx, common.LoggerFrom(ctx).With("company_id", company))
	}

	result, err := s.suggest(ctx, s.full, accounts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) suggest(ctx context.Context, e *engine.Engine, accounts []model.RawAccount) (*engine.Result, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return e.Suggest(ctx, accounts)
}

func (s *Server) handleListMappings(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("companyId")

	mappings, err := s.store.GetMappings(r.Context(), company)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, mappingsResponse{CompanyID: company, Mappings: mappings})
}

func (s *Server) handleReplaceMappings(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("companyId")

	var req mappingsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Mappings == nil {
		writeError(w, r, common.InvalidInput("mappings must be an array"))
		return
	}

	for _, m := range req.Mappings {
		field := strings.TrimSpace(m.TargetField)
		if !s.catalog.Has(field) {
			writeError(w, r, fmt.Errorf("%w: %q for account %q", common.ErrUnknownField, field, m.AccountName))
			return
		}
	}

	saved, err := s.store.ReplaceMappings(r.Context(), company, req.Mappings)
	if err != nil {
		writeError(w, r, err)
		return
	}

	common.LogInfo(r.Context(), "Replaced company mappings", common.Fields{
		"company_id": company,
		"count":      len(saved),
	})

	writeJSON(w, r, http.StatusOK, mappingsResponse{CompanyID: company, Mappings: saved})
}

func (s *Server) handleClearMappings(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteMappingsForTenant(r.Context(), r.PathValue("companyId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, deletedResponse{Deleted: deleted})
}

func (s *Server) handleDeleteMapping(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, common.InvalidInput("invalid mapping id %q", r.PathValue("id")))
		return
	}

	if err := s.store.DeleteMapping(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, deletedResponse{Deleted: 1})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalogResponse{
		Version: s.catalog.Version(),
		Fields:  s.catalog.Fields(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		common.LogError(r.Context(), err, "Health check failed", nil)
		writeJSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Version: s.version})
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body: %w", err)
		}
		return common.InvalidInput("malformed request body: %v", err)
	}
	return nil
}

// decodeObject reads the request body as a JSON object keeping values raw.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	var body map[string]json.RawMessage
	if err := decodeBody(w, r, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, common.InvalidInput("request body must be a JSON object")
	}
	return body, nil
}

// accountsFrom decodes the first present key as an account list. Entries may
// be bare names or account objects.
func accountsFrom(body map[string]json.RawMessage, keys ...string) ([]model.RawAccount, error) {
	for _, key := range keys {
		raw, ok := body[key]
		if !ok {
			continue
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, common.InvalidInput("%s must be an array", key)
		}

		var accounts []model.RawAccount
		if err := json.Unmarshal(trimmed, &accounts); err != nil {
			return nil, common.InvalidInput("%s: %v", key, err)
		}
		return accounts, nil
	}

	return nil, common.InvalidInput("%s must be an array", keys[0])
}

// companyFrom reads companyId whether it was sent as a string or a number.
func companyFrom(body map[string]json.RawMessage) string {
	raw, ok := body[keyCompanyID]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		common.LogError(r.Context(), err, "Failed to encode response", nil)
	}
}

// writeError maps sentinel errors to status codes. Server side failures are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	resp := errorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		// Server side detail stays in the log; the request id ties the two together.
		common.LogError(r.Context(), err, "Request failed", common.Fields{"path": r.URL.Path})
		resp = errorResponse{Error: http.StatusText(status), RequestID: RequestIDFrom(r.Context())}
	}

	writeJSON(w, r, status, resp)
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
