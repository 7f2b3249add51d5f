package handlers

import (
	"net/http"

	"transaction-importer/internal/dto"
	"transaction-importer/internal/services"

	"github.com/labstack/echo/v4"
)

// LedgerHandler serves imported transactions and categories
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ListTransactions returns all transactions with the overall balance
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	transactions, balance, err := h.ledgerService.ListTransactions(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.NewTransactionResponses(transactions),
		Balance:      dto.NewBalanceResponse(balance),
	})
}

// GetBalance returns income, outcome and total
// @Router /transactions/balance [get]
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	balance, err := h.ledgerService.GetBalance(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// ListCategories returns all categories ordered by title
// @Router /categories [get]
func (h *LedgerHandler) ListCategories(c echo.Context) error {
	categories, err := h.ledgerService.ListCategories(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListCategoriesResponse{
		Categories: make([]dto.CategoryResponse, len(categories)),
	}
	for i := range categories {
		response.Categories[i] = *dto.NewCategoryResponse(&categories[i])
	}

	return c.JSON(http.StatusOK, response)
}
