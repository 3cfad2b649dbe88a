// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"strings"
	"time"
)

// TypeFilter restricts a transaction list by type.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "all"
	TypeFilterIncome  TypeFilter = "income"
	TypeFilterExpense TypeFilter = "expense"
)

// DateFilter selects an inclusive lower bound relative to the current day.
type DateFilter string

const (
	DateFilterAll   DateFilter = "all"
	DateFilterToday DateFilter = "today"
	DateFilterWeek  DateFilter = "week"
	DateFilterMonth DateFilter = "month"
	DateFilterYear  DateFilter = "year"
)

// SortBy selects the sort key of a transaction list.
type SortBy string

const (
	SortByDate        SortBy = "date"
	SortByAmount      SortBy = "amount"
	SortByDescription SortBy = "description"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// TransactionFilters is the set of filters applied to a transaction list.
type TransactionFilters struct {
	Search    string
	Type      TypeFilter
	Date      DateFilter
	SortBy    SortBy
	SortOrder SortOrder
}

// DefaultTransactionFilters matches everything, newest first.
func DefaultTransactionFilters() TransactionFilters {
	return TransactionFilters{
		Type:      TypeFilterAll,
		Date:      DateFilterAll,
		SortBy:    SortByDate,
		SortOrder: SortOrderDesc,
	}
}

// ParseTransactionFilters builds filters from raw query values.
// Unknown or empty values fall back to the defaults.
func ParseTransactionFilters(search, typ, date, sortBy, sortOrder string) TransactionFilters {
	f := DefaultTransactionFilters()
	f.Search = strings.TrimSpace(search)

	switch TypeFilter(strings.ToLower(typ)) {
	case TypeFilterIncome:
		f.Type = TypeFilterIncome
	case TypeFilterExpense:
		f.Type = TypeFilterExpense
	}

	switch d := DateFilter(strings.ToLower(date)); d {
	case DateFilterToday, DateFilterWeek, DateFilterMonth, DateFilterYear:
		f.Date = d
	}

	switch s := SortBy(strings.ToLower(sortBy)); s {
	case SortByAmount, SortByDescription:
		f.SortBy = s
	}

	if SortOrder(strings.ToLower(sortOrder)) == SortOrderAsc {
		f.SortOrder = SortOrderAsc
	}

	return f
}

// StartDate resolves the filter's inclusive lower bound from now.
// It returns false for DateFilterAll. Months and years use calendar arithmetic,
// so one month before March 15 is February 15.
func (d DateFilter) StartDate(now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch d {
	case DateFilterToday:
		return today, true
	case DateFilterWeek:
		return today.AddDate(0, 0, -7), true
	case DateFilterMonth:
		return today.AddDate(0, -1, 0), true
	case DateFilterYear:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
