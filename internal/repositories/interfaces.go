package repositories

import (
	"context"

	"transaction-importer/internal/models"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	// FindByTitles returns the categories whose title is one of titles, in a single lookup
	FindByTitles(ctx context.Context, titles []string) ([]models.Category, error)
	// CreateBatch inserts one category per title and returns them with assigned identities.
	// Titles that already exist are returned as stored rather than duplicated.
	CreateBatch(ctx context.Context, titles []string) ([]models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// CreateBatch inserts all transactions in one database transaction
	CreateBatch(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error)
	GetAll(ctx context.Context) ([]models.Transaction, error)
	GetBalance(ctx context.Context) (*models.Balance, error)
}
