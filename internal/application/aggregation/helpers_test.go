package aggregation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type txnOpt func(*entity.TransactionWithCategory)

func withCategory(id uuid.UUID, name, color string) txnOpt {
	return func(t *entity.TransactionWithCategory) {
		t.Transaction.CategoryID = &id
		t.Category = &entity.CategoryRef{Name: name, Color: color}
	}
}

func withDescription(d string) txnOpt {
	return func(t *entity.TransactionWithCategory) {
		t.Transaction.Description = d
	}
}

func txn(typ entity.TransactionType, amount, day string, opts ...txnOpt) *entity.TransactionWithCategory {
	t := &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:     uuid.New(),
			Type:   typ,
			Amount: dec(amount),
			Date:   date(day),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func ids(list []*entity.TransactionWithCategory) []uuid.UUID {
	out := make([]uuid.UUID, len(list))
	for i, t := range list {
		out[i] = t.Transaction.ID
	}
	return out
}
