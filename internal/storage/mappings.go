package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
)

// queryable lets read helpers run against the database or a transaction.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GetMappings returns every accepted mapping for a tenant ordered by account name.
func (s *SQLiteStorage) GetMappings(ctx context.Context, tenantID string) ([]model.AcceptedMapping, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(tenantID, "tenantID"); err != nil {
		return nil, err
	}
	return s.getMappings(ctx, s.db, tenantID)
}

func (s *SQLiteStorage) getMappings(ctx context.Context, q queryable, tenantID string) ([]model.AcceptedMapping, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, tenant_id, account_name, account_classification, target_field, created_at
		FROM accepted_mappings
		WHERE tenant_id = ?
		ORDER BY account_name, id
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	mappings := []model.AcceptedMapping{}
	for rows.Next() {
		var (
			m         model.AcceptedMapping
			createdAt sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.TenantID, &m.AccountName, &m.AccountClassification, &m.TargetField, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		if createdAt.Valid {
			m.CreatedAt = createdAt.Time
		}
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mappings: %w", err)
	}

	return mappings, nil
}

// ReplaceMappings deletes every mapping of the tenant and inserts the given set
// in one transaction. The stored rows are returned with their ids.
func (s *SQLiteStorage) ReplaceMappings(ctx context.Context, tenantID string, mappings []model.AcceptedMapping) ([]model.AcceptedMapping, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(tenantID, "tenantID"); err != nil {
		return nil, err
	}
	if err := validateMappings(mappings); err != nil {
		return nil, err
	}

	var saved []model.AcceptedMapping
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		saved = make([]model.AcceptedMapping, 0, len(mappings))

		if _, err := tx.ExecContext(ctx, `DELETE FROM accepted_mappings WHERE tenant_id = ?`, tenantID); err != nil {
			return fmt.Errorf("failed to delete existing mappings: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO accepted_mappings (
				tenant_id, account_name, account_key,
				account_classification, classification_key,
				target_field, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		now := time.Now().UTC()
		for _, m := range mappings {
			m.TenantID = tenantID
			m.AccountName = strings.TrimSpace(m.AccountName)
			m.AccountClassification = strings.TrimSpace(m.AccountClassification)
			m.TargetField = strings.TrimSpace(m.TargetField)
			m.CreatedAt = now

			result, err := stmt.ExecContext(ctx,
				m.TenantID, m.AccountName, normalizeKey(m.AccountName),
				m.AccountClassification, normalizeKey(m.AccountClassification),
				m.TargetField, m.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert mapping %q: %w", m.AccountName, err)
			}

			m.ID, err = result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read mapping id: %w", err)
			}
			saved = append(saved, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// DeleteMappingsForTenant removes every mapping of a tenant and reports how many were removed.
func (s *SQLiteStorage) DeleteMappingsForTenant(ctx context.Context, tenantID string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(tenantID, "tenantID"); err != nil {
		return 0, err
	}

	var deleted int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM accepted_mappings WHERE tenant_id = ?`, tenantID)
		if err != nil {
			return fmt.Errorf("failed to delete mappings: %w", err)
		}
		deleted, err = result.RowsAffected()
		return err
	})
	return deleted, err
}

// DeleteMapping removes a single mapping by id.
func (s *SQLiteStorage) DeleteMapping(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM accepted_mappings WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete mapping: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("mapping %d: %w", id, common.ErrNotFound)
		}
		return nil
	})
}

// AccountHistory aggregates the accepted mappings of accountName across all
// tenants, matching the name case-insensitively.
func (s *SQLiteStorage) AccountHistory(ctx context.Context, accountName string) ([]model.FieldUsage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountName, "accountName"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT target_field, COUNT(*), COUNT(DISTINCT tenant_id)
		FROM accepted_mappings
		WHERE account_key = ?
		GROUP BY target_field
		ORDER BY target_field
	`, normalizeKey(accountName))
	if err != nil {
		return nil, fmt.Errorf("failed to query account history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var usage []model.FieldUsage
	for rows.Next() {
		var u model.FieldUsage
		if err := rows.Scan(&u.TargetField, &u.UsageCount, &u.TenantCount); err != nil {
			return nil, fmt.Errorf("failed to scan account history: %w", err)
		}
		usage = append(usage, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account history: %w", err)
	}

	return usage, nil
}

// MappingPool returns every distinct (name, classification, field) ever
// accepted, most used first, then by name, classification and field.
func (s *SQLiteStorage) MappingPool(ctx context.Context) ([]model.MappingUsage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT account_name, account_classification, target_field, usage_count, tenant_count
		FROM mapping_usage
		ORDER BY usage_count DESC, account_key, classification_key, target_field
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping pool: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pool []model.MappingUsage
	for rows.Next() {
		var u model.MappingUsage
		if err := rows.Scan(&u.AccountName, &u.AccountClassification, &u.TargetField, &u.UsageCount, &u.TenantCount); err != nil {
			return nil, fmt.Errorf("failed to scan mapping pool: %w", err)
		}
		pool = append(pool, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mapping pool: %w", err)
	}

	return pool, nil
}
