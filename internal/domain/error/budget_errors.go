// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetPeriod is returned when the budget period is not weekly, monthly or yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrBudgetCategoryNotFound is returned when the category for a budget is not found.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetCategoryNotExpense is returned when a budget targets an income category.
	ErrBudgetCategoryNotExpense = errors.New("budget category must be an expense category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount      BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetPeriod      BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryNotExpense BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields      BudgetErrorCode = "BGT-010006"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
