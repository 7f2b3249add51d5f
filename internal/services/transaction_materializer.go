package services

import (
	"errors"
	"fmt"

	"transaction-importer/internal/models"
)

var ErrUnresolvedCategory = errors.New("category label was not resolved")

// MaterializeTransactions binds each row to the category resolved for its label.
// The output keeps the row order, one transaction per row.
func MaterializeTransactions(rows []CSVRow, resolution *CategoryResolution) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		category, ok := resolution.Lookup(row.Category)
		if !ok {
			return nil, fmt.Errorf("%w: row %d label %q", ErrUnresolvedCategory, i+1, row.Category)
		}

		transactions = append(transactions, models.Transaction{
			Title:      row.Title,
			Type:       row.Type,
			Value:      row.Value,
			CategoryID: category.ID,
			Category:   category,
		})
	}
	return transactions, nil
}
