// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/adapters"
)

func newDebtRepos(t *testing.T) (adapter.DebtRepository, adapter.StatusRepository) {
	t.Helper()
	db := newTestDB(t)
	idGen := adapters.NewIDGenerator()

	statusRepo := NewStatusRepository(db, idGen)
	if err := statusRepo.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	return NewDebtRepository(db, idGen), statusRepo
}

func pendingStatus(t *testing.T, statusRepo adapter.StatusRepository) *entity.Status {
	t.Helper()
	status, err := statusRepo.FindByName(context.Background(), entity.StatusPending)
	if err != nil {
		t.Fatalf("pending status lookup failed: %v", err)
	}
	return status
}

func TestDebtRepository_CreateAndFind(t *testing.T) {
	repo, statusRepo := newDebtRepos(t)
	ctx := context.Background()
	pending := pendingStatus(t, statusRepo)

	debt := entity.NewDebt("", "Rent", decimal.RequireFromString("100.00"), "Alice", "Bob", pending.ID)
	id, err := repo.Create(ctx, debt)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated identifier")
	}

	found, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Description != "Rent" {
		t.Errorf("expected description Rent, got %q", found.Description)
	}
	if !found.Amount.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected amount 100.00, got %s", found.Amount)
	}
	if found.DebtorName != "Alice" || found.CreditorName != "Bob" {
		t.Errorf("unexpected parties: %q owes %q", found.DebtorName, found.CreditorName)
	}
	if found.StatusID != pending.ID {
		t.Errorf("expected status %s, got %s", pending.ID, found.StatusID)
	}
	if found.DueDate != nil || found.ClosingDate != nil || found.Notes != nil {
		t.Errorf("expected optional fields to stay empty: %+v", found)
	}
}

func TestDebtRepository_OptionalFieldsRoundTrip(t *testing.T) {
	repo, statusRepo := newDebtRepos(t)
	ctx := context.Background()
	pending := pendingStatus(t, statusRepo)

	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	notes := "monthly rent for the flat"
	debt := entity.NewDebt("", "Rent September", decimal.RequireFromString("850.50"), "Alice", "Bob", pending.ID)
	debt.DueDate = &due
	debt.Notes = &notes

	id, err := repo.Create(ctx, debt)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.DueDate == nil {
		t.Fatal("expected due date to survive the round trip")
	}
	if got := found.DueDate.Format("2006-01-02"); got != "2026-09-30" {
		t.Errorf("expected due date 2026-09-30, got %s", got)
	}
	if found.Notes == nil || *found.Notes != notes {
		t.Errorf("expected notes to survive the round trip, got %v", found.Notes)
	}
	if !found.Amount.Equal(decimal.RequireFromString("850.50")) {
		t.Errorf("expected amount 850.50, got %s", found.Amount)
	}
}

func TestDebtRepository_DescriptionLookups(t *testing.T) {
	repo, statusRepo := newDebtRepos(t)
	ctx := context.Background()
	pending := pendingStatus(t, statusRepo)

	debt := entity.NewDebt("", "Groceries", decimal.RequireFromString("42.10"), "Alice", "Bob", pending.ID)
	if _, err := repo.Create(ctx, debt); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	exists, err := repo.ExistsByDescription(ctx, "Groceries")
	if err != nil || !exists {
		t.Errorf("expected description to exist, got %v/%v", exists, err)
	}
	exists, err = repo.ExistsByDescription(ctx, "Utilities")
	if err != nil || exists {
		t.Errorf("expected description to be absent, got %v/%v", exists, err)
	}

	found, err := repo.FindByDescription(ctx, "Groceries")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Description != "Groceries" {
		t.Errorf("unexpected debt: %+v", found)
	}

	_, err = repo.FindByDescription(ctx, "Utilities")
	if !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound, got %v", err)
	}
}

func TestDebtRepository_UpdateAndDelete(t *testing.T) {
	repo, statusRepo := newDebtRepos(t)
	ctx := context.Background()
	pending := pendingStatus(t, statusRepo)

	debt := entity.NewDebt("", "Car repair", decimal.RequireFromString("300.00"), "Alice", "Bob", pending.ID)
	id, err := repo.Create(ctx, debt)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paid, err := statusRepo.FindByName(ctx, entity.StatusPaid)
	if err != nil {
		t.Fatalf("paid status lookup failed: %v", err)
	}

	debt.Amount = decimal.RequireFromString("275.00")
	debt.StatusID = paid.ID
	updated, err := repo.Update(ctx, id, debt)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated {
		t.Fatal("expected update to match the row")
	}

	found, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found.Amount.Equal(decimal.RequireFromString("275.00")) {
		t.Errorf("expected amount 275.00, got %s", found.Amount)
	}
	if found.StatusID != paid.ID {
		t.Errorf("expected status %s, got %s", paid.ID, found.StatusID)
	}

	updated, err = repo.Update(ctx, "01234567-89ab-cdef-0123-456789abcdef", debt)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated {
		t.Error("expected update of absent debt to match nothing")
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, id); !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}

func TestDebtRepository_List(t *testing.T) {
	repo, statusRepo := newDebtRepos(t)
	ctx := context.Background()
	pending := pendingStatus(t, statusRepo)

	descriptions := []string{"Rent", "Groceries", "Internet", "Water", "Electricity"}
	for i, d := range descriptions {
		debt := entity.NewDebt("", d, decimal.NewFromInt(int64(10*(i+1))), "Alice", "Bob", pending.ID)
		if _, err := repo.Create(ctx, debt); err != nil {
			t.Fatalf("create %q failed: %v", d, err)
		}
	}

	result, err := repo.List(ctx, adapter.Pagination{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Debts) != 2 {
		t.Errorf("expected 2 debts, got %d", len(result.Debts))
	}
	if result.PageInfo.TotalRecords != 5 {
		t.Errorf("expected 5 total records, got %d", result.PageInfo.TotalRecords)
	}
	if result.PageInfo.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", result.PageInfo.TotalPages)
	}
	for _, d := range result.Debts {
		if d.ID == "" || d.Description == "" || d.StatusID == "" {
			t.Errorf("listed debt missing fields: %+v", d)
		}
	}
}

func TestStatusRepository_SeedIsIdempotent(t *testing.T) {
	_, statusRepo := newDebtRepos(t)
	ctx := context.Background()

	// A second seed run must not duplicate the enumerated values.
	if err := statusRepo.Seed(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	statuses, err := statusRepo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(statuses) != len(entity.AllStatusNames()) {
		t.Errorf("expected %d statuses, got %d", len(entity.AllStatusNames()), len(statuses))
	}

	byName := make(map[entity.StatusName]bool)
	for _, s := range statuses {
		byName[s.Name] = true
	}
	for _, name := range entity.AllStatusNames() {
		if !byName[name] {
			t.Errorf("missing status %q after seed", name)
		}
	}
}
