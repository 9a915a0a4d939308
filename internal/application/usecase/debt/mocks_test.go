// Package debt contains debt management use cases.
package debt

import (
	"context"
	"fmt"
	"sort"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

// mockDebtRepository is an in-memory DebtRepository for use case tests.
type mockDebtRepository struct {
	debts       map[string]*entity.Debt
	nextID      int
	createCalls int
}

func newMockDebtRepository() *mockDebtRepository {
	return &mockDebtRepository{debts: make(map[string]*entity.Debt)}
}

func (m *mockDebtRepository) Create(ctx context.Context, debt *entity.Debt) (string, error) {
	m.createCalls++
	m.nextID++
	id := fmt.Sprintf("debt-%d", m.nextID)
	stored := *debt
	stored.ID = id
	m.debts[id] = &stored
	return id, nil
}

func (m *mockDebtRepository) FindByID(ctx context.Context, id string) (*entity.Debt, error) {
	if debt, ok := m.debts[id]; ok {
		copied := *debt
		return &copied, nil
	}
	return nil, domainerror.ErrDebtNotFound
}

func (m *mockDebtRepository) FindByDescription(ctx context.Context, description string) (*entity.Debt, error) {
	for _, debt := range m.debts {
		if debt.Description == description {
			copied := *debt
			return &copied, nil
		}
	}
	return nil, domainerror.ErrDebtNotFound
}

func (m *mockDebtRepository) ExistsByDescription(ctx context.Context, description string) (bool, error) {
	for _, debt := range m.debts {
		if debt.Description == description {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDebtRepository) Update(ctx context.Context, id string, debt *entity.Debt) (bool, error) {
	if _, ok := m.debts[id]; !ok {
		return false, nil
	}
	stored := *debt
	stored.ID = id
	m.debts[id] = &stored
	return true, nil
}

func (m *mockDebtRepository) Delete(ctx context.Context, id string) error {
	delete(m.debts, id)
	return nil
}

func (m *mockDebtRepository) List(ctx context.Context, p adapter.Pagination) (*adapter.DebtListResult, error) {
	ids := make([]string, 0, len(m.debts))
	for id := range m.debts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	debts := make([]*entity.Debt, 0, len(ids))
	for _, id := range ids {
		copied := *m.debts[id]
		debts = append(debts, &copied)
	}

	total := int64(len(debts))
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}

	return &adapter.DebtListResult{
		Debts: debts,
		PageInfo: adapter.PageInfo{
			Page:         p.Page,
			PageSize:     p.PageSize,
			TotalPages:   totalPages,
			TotalRecords: total,
		},
	}, nil
}

// mockStatusRepository serves the enumerated statuses from memory.
type mockStatusRepository struct {
	statuses map[entity.StatusName]*entity.Status
}

func newMockStatusRepository() *mockStatusRepository {
	m := &mockStatusRepository{statuses: make(map[entity.StatusName]*entity.Status)}
	for i, name := range entity.AllStatusNames() {
		m.statuses[name] = &entity.Status{
			ID:   fmt.Sprintf("status-%d", i+1),
			Name: name,
		}
	}
	return m
}

func (m *mockStatusRepository) FindByID(ctx context.Context, id string) (*entity.Status, error) {
	for _, status := range m.statuses {
		if status.ID == id {
			return status, nil
		}
	}
	return nil, domainerror.ErrStatusNotFound
}

func (m *mockStatusRepository) FindByName(ctx context.Context, name entity.StatusName) (*entity.Status, error) {
	if status, ok := m.statuses[name]; ok {
		return status, nil
	}
	return nil, domainerror.ErrStatusNotFound
}

func (m *mockStatusRepository) List(ctx context.Context) ([]*entity.Status, error) {
	statuses := make([]*entity.Status, 0, len(m.statuses))
	for _, name := range entity.AllStatusNames() {
		statuses = append(statuses, m.statuses[name])
	}
	return statuses, nil
}

func (m *mockStatusRepository) Seed(ctx context.Context) error {
	return nil
}
