// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// IsValid reports whether c is one of the known category types.
func (c CategoryType) IsValid() bool {
	return c == CategoryTypeExpense || c == CategoryTypeIncome
}

// Matches reports whether a category of this type may label a transaction of type t.
func (c CategoryType) Matches(t TransactionType) bool {
	return string(c) == string(t)
}

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3b82f6"

// CategoryPresetColors is the palette offered when creating a category.
var CategoryPresetColors = []string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
	"#06b6d4",
	"#84cc16",
	"#f97316",
	"#6366f1",
}

// Category represents a user-defined transaction label.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Ref returns the {name, color} projection joined onto transactions.
func (c *Category) Ref() *CategoryRef {
	return &CategoryRef{Name: c.Name, Color: c.Color}
}
