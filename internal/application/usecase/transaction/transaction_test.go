package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

var today = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func seedCategory(store *usecasetest.Store, userID uuid.UUID, name string, typ entity.CategoryType) *entity.Category {
	c := entity.NewCategory(userID, name, typ, "#f59e0b")
	store.Categories[c.ID] = c
	return c
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates with resolved category", func(t *testing.T) {
		store := usecasetest.NewStore()
		food := seedCategory(store, userID, "Food", entity.CategoryTypeExpense)
		uc := NewCreateTransactionUseCase(store.TransactionRepo(), store.CategoryRepo())

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			Date:        time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC),
			Description: "Groceries",
			Amount:      decimal.RequireFromString("42.10"),
			Type:        entity.TransactionTypeExpense,
			CategoryID:  &food.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Food", out.Transaction.CategoryName())
		assert.Equal(t, "2024-03-10", out.Transaction.Transaction.Date.Format(time.DateOnly))
		assert.Len(t, store.Transactions, 1)
	})

	t.Run("rejects category of the other type", func(t *testing.T) {
		store := usecasetest.NewStore()
		salary := seedCategory(store, userID, "Salary", entity.CategoryTypeIncome)
		uc := NewCreateTransactionUseCase(store.TransactionRepo(), store.CategoryRepo())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     userID,
			Date:       today,
			Amount:     decimal.NewFromInt(5),
			Type:       entity.TransactionTypeExpense,
			CategoryID: &salary.ID,
		})
		assert.ErrorIs(t, err, domainerror.ErrCategoryTypeMismatch)
		assert.Empty(t, store.Transactions)
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		store := usecasetest.NewStore()
		foreign := seedCategory(store, uuid.New(), "Food", entity.CategoryTypeExpense)
		uc := NewCreateTransactionUseCase(store.TransactionRepo(), store.CategoryRepo())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:     userID,
			Date:       today,
			Amount:     decimal.NewFromInt(5),
			Type:       entity.TransactionTypeExpense,
			CategoryID: &foreign.ID,
		})
		assert.ErrorIs(t, err, domainerror.ErrCategoryNotFoundForTransaction)
	})

	t.Run("validation", func(t *testing.T) {
		store := usecasetest.NewStore()
		uc := NewCreateTransactionUseCase(store.TransactionRepo(), store.CategoryRepo())

		tests := []struct {
			name  string
			input CreateTransactionInput
			want  error
		}{
			{"negative amount", CreateTransactionInput{UserID: userID, Amount: decimal.NewFromInt(-1), Type: entity.TransactionTypeIncome}, domainerror.ErrInvalidTransactionAmount},
			{"bad type", CreateTransactionInput{UserID: userID, Amount: decimal.NewFromInt(1), Type: "transfer"}, domainerror.ErrInvalidTransactionType},
			{"long description", CreateTransactionInput{UserID: userID, Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeIncome, Description: strings.Repeat("x", 256)}, domainerror.ErrDescriptionTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := usecasetest.NewStore()
	food := seedCategory(store, userID, "Food", entity.CategoryTypeExpense)
	existing := entity.NewTransaction(userID, today, "Lunch", decimal.NewFromInt(12), entity.TransactionTypeExpense, &food.ID)
	store.Transactions[existing.ID] = existing

	uc := NewUpdateTransactionUseCase(store.TransactionRepo(), store.CategoryRepo())

	t.Run("replaces every field", func(t *testing.T) {
		out, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: existing.ID,
			UserID:        userID,
			Date:          today.AddDate(0, 0, -1),
			Description:   "Refund",
			Amount:        decimal.NewFromInt(30),
			Type:          entity.TransactionTypeIncome,
		})
		require.NoError(t, err)
		assert.Nil(t, out.Transaction.Category)

		stored := store.Transactions[existing.ID]
		assert.Equal(t, "Refund", stored.Description)
		assert.Equal(t, entity.TransactionTypeIncome, stored.Type)
		assert.Nil(t, stored.CategoryID)
		assert.Equal(t, "2024-03-14", stored.Date.Format(time.DateOnly))
	})

	t.Run("hides other users' transactions", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: existing.ID,
			UserID:        uuid.New(),
			Date:          today,
			Amount:        decimal.NewFromInt(1),
			Type:          entity.TransactionTypeIncome,
		})
		var txErr *domainerror.TransactionError
		require.True(t, errors.As(err, &txErr))
		assert.Equal(t, domainerror.ErrCodeTransactionNotFound, txErr.Code)
	})
}

func TestDuplicateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := usecasetest.NewStore()
	food := seedCategory(store, userID, "Food", entity.CategoryTypeExpense)
	source := entity.NewTransaction(userID, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Coffee", decimal.RequireFromString("4.50"), entity.TransactionTypeExpense, &food.ID)
	store.Transactions[source.ID] = source

	uc := NewDuplicateTransactionUseCase(store.TransactionRepo(), usecasetest.FixedClock{T: today})

	out, err := uc.Execute(ctx, DuplicateTransactionInput{TransactionID: source.ID, UserID: userID})
	require.NoError(t, err)

	dup := out.Transaction.Transaction
	assert.NotEqual(t, source.ID, dup.ID)
	assert.Equal(t, "2024-03-15", dup.Date.Format(time.DateOnly))
	assert.Equal(t, source.Description, dup.Description)
	assert.True(t, source.Amount.Equal(dup.Amount))
	assert.Equal(t, *source.CategoryID, *dup.CategoryID)
	assert.Equal(t, "Food", out.Transaction.CategoryName())
	assert.Len(t, store.Transactions, 2)
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := usecasetest.NewStore()
	existing := entity.NewTransaction(userID, today, "", decimal.NewFromInt(1), entity.TransactionTypeIncome, nil)
	store.Transactions[existing.ID] = existing

	uc := NewDeleteTransactionUseCase(store.TransactionRepo())

	_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New(), UserID: userID})
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)

	out, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: existing.ID, UserID: userID})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Empty(t, store.Transactions)
}

func TestListAndExportTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := usecasetest.NewStore()
	clock := usecasetest.FixedClock{T: today}

	food := seedCategory(store, userID, "Food", entity.CategoryTypeExpense)
	for i := 0; i < 5; i++ {
		tx := entity.NewTransaction(userID, today.AddDate(0, 0, -i*10), "Item", decimal.NewFromInt(int64(i+1)), entity.TransactionTypeExpense, &food.ID)
		store.Transactions[tx.ID] = tx
	}
	other := entity.NewTransaction(uuid.New(), today, "Not mine", decimal.NewFromInt(99), entity.TransactionTypeExpense, nil)
	store.Transactions[other.ID] = other

	list := NewListTransactionsUseCase(store.TransactionRepo(), clock, 3)

	t.Run("limits to the most recent and applies filters", func(t *testing.T) {
		filters := valueobject.ParseTransactionFilters("", "expense", "all", "amount", "desc")
		out, err := list.Execute(ctx, ListTransactionsInput{UserID: userID, Filters: filters})
		require.NoError(t, err)
		require.Len(t, out.Transactions, 3)
		assert.Equal(t, "3", out.Transactions[0].Transaction.Amount.String())
		assert.Equal(t, "1", out.Transactions[2].Transaction.Amount.String())
	})

	t.Run("exports in the stored currency", func(t *testing.T) {
		gbp, _ := valueobject.LookupCurrency("GBP")
		store.Currencies[userID] = gbp

		export := NewExportTransactionsUseCase(list, store.Preferences(), clock)
		out, err := export.Execute(ctx, ExportTransactionsInput{UserID: userID, Filters: valueobject.DefaultTransactionFilters()})
		require.NoError(t, err)

		assert.Equal(t, "transactions-2024-03-15.csv", out.Filename)
		assert.Equal(t, 3, out.Rows)
		lines := strings.Split(out.Content, "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, `2024-03-15,expense,"Item",Food,£1.00`, lines[1])
	})
}
