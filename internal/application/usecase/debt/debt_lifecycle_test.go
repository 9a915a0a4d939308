// Package debt contains debt management use cases.
package debt

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

func seedDebt(t *testing.T, debtRepo *mockDebtRepository, statusRepo *mockStatusRepository, description string) *entity.Debt {
	t.Helper()
	uc := NewCreateDebtUseCase(debtRepo, statusRepo)
	input := validCreateInput()
	input.Description = description

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("seed debt %q failed: %v", description, err)
	}
	return output.Debt
}

func TestGetDebtUseCase(t *testing.T) {
	debtRepo := newMockDebtRepository()
	statusRepo := newMockStatusRepository()
	seeded := seedDebt(t, debtRepo, statusRepo, "Rent")
	uc := NewGetDebtUseCase(debtRepo, statusRepo)

	t.Run("returns the debt with its status", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetDebtInput{ID: seeded.ID})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if output.Debt.Description != "Rent" {
			t.Errorf("unexpected debt: %+v", output.Debt)
		}
		if output.Status == nil || output.Status.Name != entity.StatusPending {
			t.Errorf("expected Pending status, got %+v", output.Status)
		}
	})

	t.Run("absent debt is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDebtInput{ID: "missing"})
		if !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})
}

func TestListDebtsUseCase(t *testing.T) {
	debtRepo := newMockDebtRepository()
	statusRepo := newMockStatusRepository()
	for _, d := range []string{"Rent", "Groceries", "Internet"} {
		seedDebt(t, debtRepo, statusRepo, d)
	}
	uc := NewListDebtsUseCase(debtRepo, statusRepo)

	t.Run("resolves a status per debt", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListDebtsInput{Page: 1, PageSize: 10})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if len(output.Debts) != 3 {
			t.Fatalf("expected 3 debts, got %d", len(output.Debts))
		}
		for _, d := range output.Debts {
			if d.Status == nil || d.Status.Name != entity.StatusPending {
				t.Errorf("debt %s missing resolved status", d.Debt.ID)
			}
		}
		if output.PageInfo.TotalRecords != 3 {
			t.Errorf("expected 3 total records, got %d", output.PageInfo.TotalRecords)
		}
	})

	t.Run("zero paging parameters fall back to defaults", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListDebtsInput{})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if output.PageInfo.Page != defaultPage || output.PageInfo.PageSize != defaultPageSize {
			t.Errorf("expected defaults %d/%d, got %d/%d",
				defaultPage, defaultPageSize, output.PageInfo.Page, output.PageInfo.PageSize)
		}
	})
}

func TestUpdateDebtUseCase(t *testing.T) {
	newFixture := func(t *testing.T) (*mockDebtRepository, *mockStatusRepository, *entity.Debt, *UpdateDebtUseCase) {
		debtRepo := newMockDebtRepository()
		statusRepo := newMockStatusRepository()
		seeded := seedDebt(t, debtRepo, statusRepo, "Rent")
		return debtRepo, statusRepo, seeded, NewUpdateDebtUseCase(debtRepo, statusRepo)
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		_, _, seeded, uc := newFixture(t)

		amount := decimal.RequireFromString("250.00")
		status := entity.StatusPaid
		output, err := uc.Execute(context.Background(), UpdateDebtInput{
			ID:     seeded.ID,
			Amount: &amount,
			Status: &status,
		})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if !output.Debt.Amount.Equal(amount) {
			t.Errorf("expected amount 250.00, got %s", output.Debt.Amount)
		}
		if output.Status.Name != entity.StatusPaid {
			t.Errorf("expected Paid status, got %s", output.Status.Name)
		}
		if output.Debt.Description != "Rent" {
			t.Errorf("untouched field changed: %q", output.Debt.Description)
		}
	})

	t.Run("absent debt is not found", func(t *testing.T) {
		_, _, _, uc := newFixture(t)
		name := "Nobody"
		_, err := uc.Execute(context.Background(), UpdateDebtInput{ID: "missing", DebtorName: &name})
		if !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, _, seeded, uc := newFixture(t)
		amount := decimal.RequireFromString("-1.00")
		_, err := uc.Execute(context.Background(), UpdateDebtInput{ID: seeded.ID, Amount: &amount})
		var debtErr *domainerror.DebtError
		if !errors.As(err, &debtErr) || debtErr.Code != domainerror.ErrCodeNegativeAmount {
			t.Errorf("expected negative amount rejection, got %v", err)
		}
	})

	t.Run("rejects a duplicate description", func(t *testing.T) {
		debtRepo, statusRepo, seeded, uc := newFixture(t)
		seedDebt(t, debtRepo, statusRepo, "Groceries")

		taken := "Groceries"
		_, err := uc.Execute(context.Background(), UpdateDebtInput{ID: seeded.ID, Description: &taken})
		var debtErr *domainerror.DebtError
		if !errors.As(err, &debtErr) || debtErr.Code != domainerror.ErrCodeDebtDescriptionExists {
			t.Errorf("expected description conflict, got %v", err)
		}
	})

	t.Run("keeping the current description is not a conflict", func(t *testing.T) {
		_, _, seeded, uc := newFixture(t)
		same := "Rent"
		notes := "unchanged description"
		_, err := uc.Execute(context.Background(), UpdateDebtInput{ID: seeded.ID, Description: &same, Notes: &notes})
		if err != nil {
			t.Errorf("expected no conflict, got %v", err)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		_, _, seeded, uc := newFixture(t)
		status := entity.StatusName("Cancelled")
		_, err := uc.Execute(context.Background(), UpdateDebtInput{ID: seeded.ID, Status: &status})
		var debtErr *domainerror.DebtError
		if !errors.As(err, &debtErr) || debtErr.Code != domainerror.ErrCodeInvalidStatus {
			t.Errorf("expected invalid status rejection, got %v", err)
		}
	})
}

func TestDeleteDebtUseCase(t *testing.T) {
	debtRepo := newMockDebtRepository()
	statusRepo := newMockStatusRepository()
	seeded := seedDebt(t, debtRepo, statusRepo, "Rent")
	uc := NewDeleteDebtUseCase(debtRepo)

	t.Run("deletes an existing debt", func(t *testing.T) {
		if err := uc.Execute(context.Background(), DeleteDebtInput{ID: seeded.ID}); err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if _, err := debtRepo.FindByID(context.Background(), seeded.ID); !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected the debt to be gone, got %v", err)
		}
	})

	t.Run("absent debt is not found", func(t *testing.T) {
		err := uc.Execute(context.Background(), DeleteDebtInput{ID: seeded.ID})
		if !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})
}
