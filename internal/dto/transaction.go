package dto

import (
	"time"

	"transaction-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// TransactionResponse represents a transaction with its category
type TransactionResponse struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Value     string            `json:"value"`
	Category  *CategoryResponse `json:"category,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// BalanceResponse holds the ledger totals
type BalanceResponse struct {
	Income  string `json:"income"`
	Outcome string `json:"outcome"`
	Total   string `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      BalanceResponse       `json:"balance"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func NewCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        category.ID,
		Title:     category.Title,
		CreatedAt: category.CreatedAt,
	}
}

func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID,
		Title:     transaction.Title,
		Type:      transaction.Type,
		Value:     formatAmount(transaction.Value),
		Category:  NewCategoryResponse(transaction.Category),
		CreatedAt: transaction.CreatedAt,
	}
}

func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = NewTransactionResponse(&transactions[i])
	}
	return responses
}

func NewBalanceResponse(balance *models.Balance) BalanceResponse {
	return BalanceResponse{
		Income:  formatAmount(balance.Income),
		Outcome: formatAmount(balance.Outcome),
		Total:   formatAmount(balance.Total),
	}
}

// formatAmount renders cents by default and keeps any finer digits the amount carries
func formatAmount(amount decimal.Decimal) string {
	if amount.Equal(amount.Round(2)) {
		return amount.StringFixed(2)
	}
	return amount.String()
}
