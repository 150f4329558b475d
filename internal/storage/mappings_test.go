package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/model"
)

func TestReplaceMappings(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	saved, err := store.ReplaceMappings(ctx, "acme", []model.AcceptedMapping{
		{AccountName: "Utilities", AccountClassification: "Expense", TargetField: "utilities"},
		{AccountName: " Rent ", AccountClassification: "Expense", TargetField: "rent"},
	})
	if err != nil {
		t.Fatalf("ReplaceMappings() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("ReplaceMappings() saved %d rows, want 2", len(saved))
	}
	for _, m := range saved {
		if m.ID == 0 || m.TenantID != "acme" || m.CreatedAt.IsZero() {
			t.Errorf("saved mapping not populated: %+v", m)
		}
	}

	got, err := store.GetMappings(ctx, "acme")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetMappings() returned %d rows, want 2", len(got))
	}
	if got[0].AccountName != "Rent" || got[1].AccountName != "Utilities" {
		t.Errorf("GetMappings() not ordered by account name: %q, %q", got[0].AccountName, got[1].AccountName)
	}

	// A second replace is a full replacement, not an upsert.
	if _, err := store.ReplaceMappings(ctx, "acme", []model.AcceptedMapping{
		{AccountName: "Payroll", TargetField: "salaries"},
	}); err != nil {
		t.Fatalf("second ReplaceMappings() error = %v", err)
	}

	got, err = store.GetMappings(ctx, "acme")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(got) != 1 || got[0].TargetField != "salaries" {
		t.Errorf("GetMappings() after replace = %+v, want only the payroll mapping", got)
	}

	// Replacing with nothing clears the tenant.
	if _, err := store.ReplaceMappings(ctx, "acme", nil); err != nil {
		t.Fatalf("empty ReplaceMappings() error = %v", err)
	}
	got, err = store.GetMappings(ctx, "acme")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetMappings() = %+v, want none", got)
	}
}

func TestReplaceMappings_InvalidLeavesExistingRows(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	seedMappings(t, store, map[string][]model.AcceptedMapping{
		"acme": {{AccountName: "Rent", TargetField: "rent"}},
	})

	_, err := store.ReplaceMappings(ctx, "acme", []model.AcceptedMapping{{AccountName: "Rent"}})
	if !errors.Is(err, ErrInvalidMapping) {
		t.Fatalf("ReplaceMappings() error = %v, want ErrInvalidMapping", err)
	}
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("ReplaceMappings() error = %v, want it to wrap ErrInvalidInput", err)
	}

	got, err := store.GetMappings(ctx, "acme")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("GetMappings() = %+v, want the original row", got)
	}

	if _, err := store.ReplaceMappings(ctx, "", nil); !errors.Is(err, ErrEmptyString) {
		t.Errorf("ReplaceMappings() with blank tenant error = %v, want ErrEmptyString", err)
	}
}

func TestGetMappings_TenantIsolation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	seedMappings(t, store, map[string][]model.AcceptedMapping{
		"acme":   {{AccountName: "Rent", TargetField: "rent"}},
		"globex": {{AccountName: "Rent", TargetField: "prepaidExpenses"}, {AccountName: "Fuel", TargetField: "autoTravel"}},
	})

	got, err := store.GetMappings(ctx, "acme")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(got) != 1 || got[0].TargetField != "rent" {
		t.Errorf("GetMappings(acme) = %+v", got)
	}

	got, err = store.GetMappings(ctx, "initech")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("GetMappings(initech) = %#v, want an empty slice", got)
	}
}

func TestDeleteMappings(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	seedMappings(t, store, map[string][]model.AcceptedMapping{
		"acme":   {{AccountName: "Rent", TargetField: "rent"}, {AccountName: "Fuel", TargetField: "autoTravel"}},
		"globex": {{AccountName: "Rent", TargetField: "rent"}},
	})

	deleted, err := store.DeleteMappingsForTenant(ctx, "acme")
	if err != nil {
		t.Fatalf("DeleteMappingsForTenant() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("DeleteMappingsForTenant() = %d, want 2", deleted)
	}

	remaining, err := store.GetMappings(ctx, "globex")
	if err != nil {
		t.Fatalf("GetMappings() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("GetMappings(globex) = %+v, want 1 row", remaining)
	}

	if err := store.DeleteMapping(ctx, remaining[0].ID); err != nil {
		t.Fatalf("DeleteMapping() error = %v", err)
	}
	if err := store.DeleteMapping(ctx, remaining[0].ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("DeleteMapping() twice error = %v, want ErrNotFound", err)
	}
}

func TestAccountHistory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	seed := map[string][]model.AcceptedMapping{}
	for i := range 10 {
		tenant := "tenant-" + string(rune('a'+i))
		field := "cogsMaterials"
		if i >= 8 {
			field = "officeExpenses"
		}
		name := "Shop Supplies"
		if i%2 == 0 {
			name = "SHOP SUPPLIES"
		}
		seed[tenant] = []model.AcceptedMapping{{AccountName: name, TargetField: field}}
	}
	seed["tenant-a"] = append(seed["tenant-a"], model.AcceptedMapping{AccountName: "Rent", TargetField: "rent"})
	seedMappings(t, store, seed)

	got, err := store.AccountHistory(ctx, "  shop supplies")
	if err != nil {
		t.Fatalf("AccountHistory() error = %v", err)
	}

	want := []model.FieldUsage{
		{TargetField: "cogsMaterials", UsageCount: 8, TenantCount: 8},
		{TargetField: "officeExpenses", UsageCount: 2, TenantCount: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AccountHistory() = %+v, want %+v", got, want)
	}

	got, err = store.AccountHistory(ctx, "Unknown")
	if err != nil {
		t.Fatalf("AccountHistory() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("AccountHistory(Unknown) = %+v, want none", got)
	}
}

func TestAccountHistory_CountsRepeatsWithinTenant(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	seedMappings(t, store, map[string][]model.AcceptedMapping{
		"acme": {
			{AccountName: "Rent", TargetField: "rent"},
			{AccountName: "rent", TargetField: "rent"},
		},
	})

	got, err := store.AccountHistory(context.Background(), "Rent")
	if err != nil {
		t.Fatalf("AccountHistory() error = %v", err)
	}
	want := []model.FieldUsage{{TargetField: "rent", UsageCount: 2, TenantCount: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AccountHistory() = %+v, want %+v", got, want)
	}
}

func TestMappingPool(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	seedMappings(t, store, map[string][]model.AcceptedMapping{
		"acme": {
			{AccountName: "Shop Supply", AccountClassification: "Expense", TargetField: "cogsMaterials"},
			{AccountName: "Fuel", AccountClassification: "Expense", TargetField: "autoTravel"},
		},
		"globex": {
			{AccountName: "shop supply", AccountClassification: "expense", TargetField: "cogsMaterials"},
			{AccountName: "Bank Fees", AccountClassification: "Expense", TargetField: "bankCharges"},
		},
	})

	pool, err := store.MappingPool(context.Background())
	if err != nil {
		t.Fatalf("MappingPool() error = %v", err)
	}
	if len(pool) != 3 {
		t.Fatalf("MappingPool() returned %d rows, want 3: %+v", len(pool), pool)
	}

	if pool[0].TargetField != "cogsMaterials" || pool[0].UsageCount != 2 || pool[0].TenantCount != 2 {
		t.Errorf("most used entry = %+v, want cogsMaterials used twice by two tenants", pool[0])
	}
	if pool[1].AccountName != "Bank Fees" || pool[2].AccountName != "Fuel" {
		t.Errorf("equal usage not ordered by name: %q, %q", pool[1].AccountName, pool[2].AccountName)
	}
}

func TestMappingPool_Empty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	pool, err := store.MappingPool(context.Background())
	if err != nil {
		t.Fatalf("MappingPool() error = %v", err)
	}
	if len(pool) != 0 {
		t.Errorf("MappingPool() = %+v, want none", pool)
	}
}
