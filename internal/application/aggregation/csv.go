package aggregation

import (
	"strings"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// CSVHeader is the first line of every export.
const CSVHeader = "Date,Type,Description,Category,Amount"

// ExportCSV renders transactions as CSV text. Description is always quoted with
// embedded quotes doubled; Amount is the currency-formatted display string.
// Rows are separated by "\n" with no trailing newline.
func ExportCSV(transactions []*entity.TransactionWithCategory, currency valueobject.Currency) string {
	rows := make([]string, 0, len(transactions)+1)
	rows = append(rows, CSVHeader)

	for _, t := range transactions {
		if t == nil || t.Transaction == nil {
			continue
		}
		txn := t.Transaction
		rows = append(rows, strings.Join([]string{
			txn.Date.Format("2006-01-02"),
			string(txn.Type),
			`"` + strings.ReplaceAll(txn.Description, `"`, `""`) + `"`,
			t.CategoryName(),
			currency.Format(txn.Amount),
		}, ","))
	}

	return strings.Join(rows, "\n")
}
