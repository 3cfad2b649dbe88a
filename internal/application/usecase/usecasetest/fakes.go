// Package usecasetest provides in-memory adapter implementations for use case tests.
package usecasetest

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// Store is an in-memory backing for every repository adapter.
type Store struct {
	mu           sync.Mutex
	Transactions map[uuid.UUID]*entity.Transaction
	Categories   map[uuid.UUID]*entity.Category
	Budgets      map[uuid.UUID]*entity.Budget
	Currencies   map[uuid.UUID]valueobject.Currency

	// Err, when set, is returned by every call.
	Err error
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		Transactions: make(map[uuid.UUID]*entity.Transaction),
		Categories:   make(map[uuid.UUID]*entity.Category),
		Budgets:      make(map[uuid.UUID]*entity.Budget),
		Currencies:   make(map[uuid.UUID]valueobject.Currency),
	}
}

// TransactionRepo returns the store as an adapter.TransactionRepository.
func (s *Store) TransactionRepo() adapter.TransactionRepository { return (*transactionRepo)(s) }

// CategoryRepo returns the store as an adapter.CategoryRepository.
func (s *Store) CategoryRepo() adapter.CategoryRepository { return (*categoryRepo)(s) }

// BudgetRepo returns the store as an adapter.BudgetRepository.
func (s *Store) BudgetRepo() adapter.BudgetRepository { return (*budgetRepo)(s) }

// Preferences returns the store as an adapter.PreferenceStore.
func (s *Store) Preferences() adapter.PreferenceStore { return (*preferenceStore)(s) }

func (s *Store) ref(categoryID *uuid.UUID) *entity.CategoryRef {
	if categoryID == nil {
		return nil
	}
	c, ok := s.Categories[*categoryID]
	if !ok {
		return nil
	}
	return c.Ref()
}

type transactionRepo Store

func (r *transactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *t
	r.Transactions[t.ID] = &cp
	return nil
}

func (r *transactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.Transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *transactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return &entity.TransactionWithCategory{Transaction: t, Category: (*Store)(r).ref(t.CategoryID)}, nil
}

func (r *transactionRepo) FindByFilter(_ context.Context, f adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []*entity.TransactionWithCategory
	for _, t := range r.Transactions {
		if t.UserID != f.UserID {
			continue
		}
		if f.Type != nil && t.Type != *f.Type {
			continue
		}
		if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
			continue
		}
		if f.StartDate != nil && t.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && t.Date.After(*f.EndDate) {
			continue
		}
		cp := *t
		out = append(out, &entity.TransactionWithCategory{Transaction: &cp, Category: (*Store)(r).ref(t.CategoryID)})
	}

	slices.SortFunc(out, func(a, b *entity.TransactionWithCategory) int {
		return b.Transaction.Date.Compare(a.Transaction.Date)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *transactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *t
	r.Transactions[t.ID] = &cp
	return nil
}

func (r *transactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Transactions, id)
	return nil
}

type categoryRepo Store

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *c
	r.Categories[c.ID] = &cp
	return nil
}

func (r *categoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	c, ok := r.Categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *categoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return r.find(userID, nil)
}

func (r *categoryRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, t entity.CategoryType) ([]*entity.Category, error) {
	return r.find(userID, &t)
}

func (r *categoryRepo) find(userID uuid.UUID, t *entity.CategoryType) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []*entity.Category{}
	for _, c := range r.Categories {
		if c.UserID == userID && (t == nil || c.Type == *t) {
			cp := *c
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Category) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out, nil
}

func (r *categoryRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	list, err := r.find(userID, nil)
	return int64(len(list)), err
}

func (r *categoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *c
	r.Categories[c.ID] = &cp
	return nil
}

func (r *categoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Categories, id)
	return nil
}

type budgetRepo Store

func (r *budgetRepo) Create(_ context.Context, b *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *b
	r.Budgets[b.ID] = &cp
	return nil
}

func (r *budgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	b, ok := r.Budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *budgetRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.BudgetWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.BudgetWithCategory
	for _, b := range r.Budgets {
		if b.UserID != userID {
			continue
		}
		cp := *b
		out = append(out, &entity.BudgetWithCategory{Budget: &cp, Category: (*Store)(r).ref(&cp.CategoryID)})
	}
	slices.SortFunc(out, func(a, b *entity.BudgetWithCategory) int {
		return b.Budget.CreatedAt.Compare(a.Budget.CreatedAt)
	})
	return out, nil
}

func (r *budgetRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	list, err := r.FindByUser(ctx, userID)
	return int64(len(list)), err
}

func (r *budgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Budgets, id)
	return nil
}

type preferenceStore Store

// ErrUnavailable is a convenience error for simulating an outage.
var ErrUnavailable = errors.New("store unavailable")

func (p *preferenceStore) GetCurrency(_ context.Context, userID uuid.UUID) (valueobject.Currency, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return valueobject.DefaultCurrency, false, p.Err
	}
	c, ok := p.Currencies[userID]
	if !ok {
		return valueobject.DefaultCurrency, false, nil
	}
	return c, true, nil
}

func (p *preferenceStore) SetCurrency(_ context.Context, userID uuid.UUID, c valueobject.Currency) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Currencies[userID] = c
	return nil
}

func (p *preferenceStore) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Err
}
