// Package model defines database models for persistence layer.
package model

// AllModels lists every model managed by AutoMigrate.
func AllModels() []any {
	return []any{
		&CategoryModel{},
		&TransactionModel{},
		&BudgetModel{},
	}
}
