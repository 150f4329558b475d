// Package storage provides the accepted-mapping persistence layer.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = fmt.Errorf("%w: string parameter cannot be empty", common.ErrInvalidInput)
	ErrInvalidMapping = fmt.Errorf("%w: invalid mapping", common.ErrInvalidInput)
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMappings validates every mapping in a bulk replace.
func validateMappings(mappings []model.AcceptedMapping) error {
	for i := range mappings {
		if err := validateMapping(&mappings[i]); err != nil {
			return fmt.Errorf("mapping at index %d: %w", i, err)
		}
	}
	return nil
}

// validateMapping validates a single accepted mapping.
func validateMapping(m *model.AcceptedMapping) error {
	if strings.TrimSpace(m.AccountName) == "" {
		return fmt.Errorf("%w: missing account name", ErrInvalidMapping)
	}
	if strings.TrimSpace(m.TargetField) == "" {
		return fmt.Errorf("%w: missing target field for %q", ErrInvalidMapping, m.AccountName)
	}
	return nil
}
