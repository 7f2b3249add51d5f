package dto

import (
	"errors"
	"testing"

	"transaction-importer/internal/models"
	"transaction-importer/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionResponse_FormatsValueAndCategory(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Title: "Work"}
	transaction := models.Transaction{
		ID:       uuid.New(),
		Title:    "Salary",
		Type:     models.TransactionTypeIncome,
		Value:    decimal.NewFromInt(5000),
		Category: category,
	}

	response := NewTransactionResponse(&transaction)

	assert.Equal(t, "5000.00", response.Value)
	require.NotNil(t, response.Category)
	assert.Equal(t, "Work", response.Category.Title)
	assert.Equal(t, category.ID, response.Category.ID)
}

func TestNewTransactionResponse_WithoutCategory(t *testing.T) {
	response := NewTransactionResponse(&models.Transaction{Value: decimal.RequireFromString("1.5")})

	assert.Nil(t, response.Category)
	assert.Equal(t, "1.50", response.Value)
}

func TestNewBalanceResponse(t *testing.T) {
	balance := models.NewBalance(decimal.NewFromInt(100), decimal.RequireFromString("250.5"))

	response := NewBalanceResponse(balance)

	assert.Equal(t, "100.00", response.Income)
	assert.Equal(t, "250.50", response.Outcome)
	assert.Equal(t, "-150.50", response.Total)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"-5.00", "-5.00"},
		{"1.5000", "1.50"},
		{"1.239", "1.239"},
		{"0.004", "0.004"},
		{"-0.0001", "-0.0001"},
		{"12345678901234567.89", "12345678901234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestNewBalanceResponse_KeepsSubCentTotals(t *testing.T) {
	balance := models.NewBalance(decimal.RequireFromString("1.239"), decimal.NewFromInt(-5))

	response := NewBalanceResponse(balance)

	assert.Equal(t, "1.239", response.Income)
	assert.Equal(t, "-5.00", response.Outcome)
	assert.Equal(t, "6.239", response.Total)
}

func TestNewImportResponse(t *testing.T) {
	result := &services.ImportResult{
		Transactions:      []models.Transaction{{Title: "A", Value: decimal.NewFromInt(1)}},
		RowsRead:          2,
		RowsSkipped:       1,
		CategoriesCreated: 1,
		CleanupErr:        errors.New("permission denied"),
	}

	response := NewImportResponse(result)

	assert.Len(t, response.Transactions, 1)
	assert.Equal(t, 2, response.Summary.RowsRead)
	assert.Equal(t, 1, response.Summary.RowsSkipped)
	assert.False(t, response.Summary.FileRemoved)
}
