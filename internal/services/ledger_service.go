package services

import (
	"context"
	"fmt"

	"transaction-importer/internal/models"
	"transaction-importer/internal/repositories"
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// ListTransactions returns every transaction together with the overall balance.
// The balance is summed from the listed rows so both always describe the same snapshot.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]models.Transaction, *models.Balance, error) {
	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	balance := models.BalanceOf(transactions)
	s.recordBalance(balance)

	return transactions, balance, nil
}

// GetBalance returns income, outcome and total across all transactions
func (s *ledgerService) GetBalance(ctx context.Context) (*models.Balance, error) {
	balance, err := s.transactionRepo.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	s.recordBalance(balance)

	return balance, nil
}

func (s *ledgerService) recordBalance(balance *models.Balance) {
	s.metrics.RecordGauge("ledger.balance", balance.Income.InexactFloat64(), map[string]string{"component": "income"})
	s.metrics.RecordGauge("ledger.balance", balance.Outcome.InexactFloat64(), map[string]string{"component": "outcome"})
	s.metrics.RecordGauge("ledger.balance", balance.Total.InexactFloat64(), map[string]string{"component": "total"})
}

// ListCategories returns every category ordered by title
func (s *ledgerService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
