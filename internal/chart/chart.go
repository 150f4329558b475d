// Package chart reads and writes chart-of-accounts and mapping CSV files.
package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV columns unless a file says otherwise.
const DefaultDelimiter = ','

func newReader(r io.Reader, delim rune) gocsv.CSVReader {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}

func unmarshal[T any](r io.Reader, delim rune) ([]T, error) {
	var rows []T
	if err := gocsv.UnmarshalCSV(newReader(r, delim), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: error parsing CSV: %w", common.ErrInvalidInput, err)
	}
	return rows, nil
}

// ReadAccounts parses a chart of accounts with the columns name,
// classification, code and type. Rows without a name are skipped.
func ReadAccounts(r io.Reader, delim rune) ([]model.RawAccount, error) {
	rows, err := unmarshal[model.RawAccount](r, delim)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.RawAccount, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		accounts = append(accounts, row)
	}
	return accounts, nil
}

// ReadMappings parses accepted mappings with the columns company_id,
// account_name, account_classification and target_field.
func ReadMappings(r io.Reader, delim rune) ([]model.AcceptedMapping, error) {
	rows, err := unmarshal[model.AcceptedMapping](r, delim)
	if err != nil {
		return nil, err
	}

	mappings := make([]model.AcceptedMapping, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.AccountName) == "" && strings.TrimSpace(row.TargetField) == "" {
			continue
		}
		mappings = append(mappings, row)
	}
	return mappings, nil
}

// GroupByTenant splits mappings by company. Rows without a company take
// defaultTenant; with no default they are rejected.
func GroupByTenant(mappings []model.AcceptedMapping, defaultTenant string) (map[string][]model.AcceptedMapping, error) {
	groups := make(map[string][]model.AcceptedMapping)
	for i, m := range mappings {
		tenant := strings.TrimSpace(m.TenantID)
		if tenant == "" {
			tenant = strings.TrimSpace(defaultTenant)
		}
		if tenant == "" {
			return nil, common.InvalidInput("row %d (%q) has no company id", i+1, m.AccountName)
		}
		m.TenantID = tenant
		groups[tenant] = append(groups[tenant], m)
	}
	return groups, nil
}

func marshal(w io.Writer, delim rune, rows any) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// WriteSuggestions writes one row per suggestion.
func WriteSuggestions(w io.Writer, delim rune, suggestions []model.MappingSuggestion) error {
	if suggestions == nil {
		suggestions = []model.MappingSuggestion{}
	}
	return marshal(w, delim, suggestions)
}

// WriteMappings writes accepted mappings in the format ReadMappings reads.
func WriteMappings(w io.Writer, delim rune, mappings []model.AcceptedMapping) error {
	if mappings == nil {
		mappings = []model.AcceptedMapping{}
	}
	return marshal(w, delim, mappings)
}

// ReadAccountsFile opens path and parses it with ReadAccounts.
func ReadAccountsFile(path string, delim rune) ([]model.RawAccount, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close file", "file", path, "error", err)
		}
	}()

	accounts, err := ReadAccounts(file, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Read chart of accounts", "file", path, "count", len(accounts))
	return accounts, nil
}

// ReadMappingsFile opens path and parses it with ReadMappings.
func ReadMappingsFile(path string, delim rune) ([]model.AcceptedMapping, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Failed to close file", "file", path, "error", err)
		}
	}()

	mappings, err := ReadMappings(file, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Read accepted mappings", "file", path, "count", len(mappings))
	return mappings, nil
}

// WriteSuggestionsFile writes suggestions to path, creating parent directories.
func WriteSuggestionsFile(path string, delim rune, suggestions []model.MappingSuggestion) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}

	if err := WriteSuggestions(file, delim, suggestions); err != nil {
		_ = file.Close()
		return err
	}

	slog.Info("Wrote suggestions", "file", path, "count", len(suggestions))
	return file.Close()
}

// ParseDelimiter turns a flag value such as ";" or "\t" into a rune.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return DefaultDelimiter, nil
	case `\t`, "tab":
		return '\t', nil
	}

	runes := []rune(s)
	if len(runes) != 1 || runes[0] == '"' || runes[0] == '\n' || runes[0] == '\r' {
		return 0, common.InvalidInput("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
