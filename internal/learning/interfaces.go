// Package learning infers mappings from what other tenants previously accepted.
package learning

import (
	"context"

	"github.com/Veraticus/chart-mapper/internal/model"
)

// HistoryStore is read-only access to the aggregated accepted-mapping index.
type HistoryStore interface {
	// AccountHistory aggregates every accepted mapping whose account name equals
	// accountName (case-insensitive) across all tenants, one row per target field.
	AccountHistory(ctx context.Context, accountName string) ([]model.FieldUsage, error)
	// MappingPool returns every distinct (name, classification, field) ever accepted.
	MappingPool(ctx context.Context) ([]model.MappingUsage, error)
}
