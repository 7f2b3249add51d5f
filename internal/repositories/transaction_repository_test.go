package repositories

import (
	"context"
	"testing"
	"time"

	"transaction-importer/internal/database"
	"transaction-importer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	ctx    context.Context
	food   *models.Category
	salary *models.Category
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.food = database.CreateTestCategory(s.T(), s.db, "Food")
	s.salary = database.CreateTestCategory(s.T(), s.db, "Salary")
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(title, txType, value string, category *models.Category) models.Transaction {
	return models.Transaction{
		Title:      title,
		Type:       txType,
		Value:      decimal.RequireFromString(value),
		CategoryID: category.ID,
		Category:   category,
	}
}

func (s *TransactionRepositorySuite) TestCreateBatch_EmptyInput() {
	created, err := s.repo.CreateBatch(s.ctx, nil)
	s.NoError(err)
	s.NotNil(created)
	s.Empty(created)
}

func (s *TransactionRepositorySuite) TestCreateBatch_AssignsIdentity() {
	transactions := []models.Transaction{
		s.newTransaction("Paycheck", models.TransactionTypeIncome, "1000.50", s.salary),
		s.newTransaction("Groceries", models.TransactionTypeOutcome, "200.25", s.food),
	}

	created, err := s.repo.CreateBatch(s.ctx, transactions)
	s.NoError(err)
	s.Require().Len(created, 2)

	for _, tx := range created {
		s.NotEqual(uuid.Nil, tx.ID)
		s.NotZero(tx.CreatedAt)
	}
	s.Equal("Paycheck", created[0].Title)
	s.Equal(s.salary.ID, created[0].CategoryID)
	s.Require().NotNil(created[0].Category)
	s.Equal("Salary", created[0].Category.Title)
}

func (s *TransactionRepositorySuite) TestCreateBatch_DoesNotWriteCategories() {
	transactions := []models.Transaction{
		s.newTransaction("Groceries", models.TransactionTypeOutcome, "20", s.food),
		s.newTransaction("Snacks", models.TransactionTypeOutcome, "5", s.food),
	}

	_, err := s.repo.CreateBatch(s.ctx, transactions)
	s.NoError(err)
	s.Equal(int64(1), database.CountCategoriesByTitle(s.T(), s.db, "Food"))
}

func (s *TransactionRepositorySuite) TestCreateBatch_InvalidRowRollsBack() {
	transactions := []models.Transaction{
		s.newTransaction("Paycheck", models.TransactionTypeIncome, "1000", s.salary),
		s.newTransaction("Broken", "refund", "10", s.food),
	}

	_, err := s.repo.CreateBatch(s.ctx, transactions)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	all, err := s.repo.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *TransactionRepositorySuite) TestGetAll_PreloadsCategory() {
	first := s.newTransaction("Paycheck", models.TransactionTypeIncome, "1000", s.salary)
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := s.newTransaction("Groceries", models.TransactionTypeOutcome, "50", s.food)

	_, err := s.repo.CreateBatch(s.ctx, []models.Transaction{second, first})
	s.Require().NoError(err)

	all, err := s.repo.GetAll(s.ctx)
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Paycheck", all[0].Title)
	s.Require().NotNil(all[0].Category)
	s.Equal("Salary", all[0].Category.Title)
	s.Require().NotNil(all[1].Category)
	s.Equal("Food", all[1].Category.Title)
}

func (s *TransactionRepositorySuite) TestGetBalance_NoTransactions() {
	balance, err := s.repo.GetBalance(s.ctx)
	s.NoError(err)
	s.True(balance.Income.IsZero())
	s.True(balance.Outcome.IsZero())
	s.True(balance.Total.IsZero())
}

func (s *TransactionRepositorySuite) TestGetBalance_SumsByType() {
	transactions := []models.Transaction{
		s.newTransaction("Paycheck", models.TransactionTypeIncome, "1000.50", s.salary),
		s.newTransaction("Bonus", models.TransactionTypeIncome, "500", s.salary),
		s.newTransaction("Groceries", models.TransactionTypeOutcome, "200.25", s.food),
	}
	_, err := s.repo.CreateBatch(s.ctx, transactions)
	s.Require().NoError(err)

	balance, err := s.repo.GetBalance(s.ctx)
	s.NoError(err)
	s.True(decimal.RequireFromString("1500.50").Equal(balance.Income), "income was %s", balance.Income)
	s.True(decimal.RequireFromString("200.25").Equal(balance.Outcome), "outcome was %s", balance.Outcome)
	s.True(decimal.RequireFromString("1300.25").Equal(balance.Total), "total was %s", balance.Total)
}
