package repositories

import (
	"context"
	"fmt"

	"transaction-importer/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const createBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch creates multiple transactions in a single database transaction.
// Category associations are never written here; they must already exist.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return []models.Transaction{}, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).CreateInBatches(&transactions, createBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetAll retrieves every transaction with its category, oldest first
func (r *transactionRepository) GetAll(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetBalance sums income and outcome values across all transactions
func (r *transactionRepository) GetBalance(ctx context.Context) (*models.Balance, error) {
	var totals []struct {
		Type  string
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(value), 0) AS total").
		Group("type").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	income := decimal.Zero
	outcome := decimal.Zero
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = t.Total
		case models.TransactionTypeOutcome:
			outcome = t.Total
		}
	}

	return models.NewBalance(income, outcome), nil
}
