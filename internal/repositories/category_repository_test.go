package repositories

import (
	"context"
	"fmt"
	"testing"

	"transaction-importer/internal/database"
	"transaction-importer/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestFindByTitles_EmptyInput() {
	categories, err := s.repo.FindByTitles(s.ctx, nil)
	s.NoError(err)
	s.NotNil(categories)
	s.Empty(categories)
}

func (s *CategoryRepositorySuite) TestFindByTitles_ReturnsOnlyMatches() {
	food := database.CreateTestCategory(s.T(), s.db, "Food")
	database.CreateTestCategory(s.T(), s.db, "Rent")

	categories, err := s.repo.FindByTitles(s.ctx, []string{"Food", "Travel"})
	s.NoError(err)
	s.Require().Len(categories, 1)
	s.Equal(food.ID, categories[0].ID)
	s.Equal("Food", categories[0].Title)
}

func (s *CategoryRepositorySuite) TestFindByTitles_IsCaseSensitive() {
	database.CreateTestCategory(s.T(), s.db, "Food")

	categories, err := s.repo.FindByTitles(s.ctx, []string{"food"})
	s.NoError(err)
	s.Empty(categories)
}

func (s *CategoryRepositorySuite) TestFindByTitles_SpansLookupChunks() {
	titles := make([]string, lookupChunkSize+5)
	for i := range titles {
		titles[i] = fmt.Sprintf("Category %04d", i)
	}
	_, err := s.repo.CreateBatch(s.ctx, titles)
	s.Require().NoError(err)

	categories, err := s.repo.FindByTitles(s.ctx, titles)
	s.NoError(err)
	s.Len(categories, len(titles))
}

func (s *CategoryRepositorySuite) TestCreateBatch_EmptyInput() {
	categories, err := s.repo.CreateBatch(s.ctx, []string{})
	s.NoError(err)
	s.Empty(categories)

	all, err := s.repo.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(all)
}

func (s *CategoryRepositorySuite) TestCreateBatch_PersistsInInputOrder() {
	categories, err := s.repo.CreateBatch(s.ctx, []string{"Salary", "Food", "Rent"})
	s.NoError(err)
	s.Require().Len(categories, 3)

	s.Equal("Salary", categories[0].Title)
	s.Equal("Food", categories[1].Title)
	s.Equal("Rent", categories[2].Title)
	for _, category := range categories {
		s.NotEqual(uuid.Nil, category.ID)
		s.NotZero(category.CreatedAt)
	}
}

func (s *CategoryRepositorySuite) TestCreateBatch_ExistingTitleKeepsIdentity() {
	existing := database.CreateTestCategory(s.T(), s.db, "Food")

	categories, err := s.repo.CreateBatch(s.ctx, []string{"Food", "Travel"})
	s.NoError(err)
	s.Require().Len(categories, 2)

	s.Equal(existing.ID, categories[0].ID)
	s.Equal("Travel", categories[1].Title)
	s.Equal(int64(1), database.CountCategoriesByTitle(s.T(), s.db, "Food"))
}

func (s *CategoryRepositorySuite) TestCreateBatch_RejectsEmptyTitle() {
	_, err := s.repo.CreateBatch(s.ctx, []string{"Food", ""})
	s.Error(err)
	s.ErrorIs(err, models.ErrCategoryTitleRequired)

	// the whole batch is rolled back
	s.Equal(int64(0), database.CountCategoriesByTitle(s.T(), s.db, "Food"))
}

func (s *CategoryRepositorySuite) TestGetAll_OrderedByTitle() {
	database.CreateTestCategory(s.T(), s.db, "Rent")
	database.CreateTestCategory(s.T(), s.db, "Food")
	database.CreateTestCategory(s.T(), s.db, "Salary")

	categories, err := s.repo.GetAll(s.ctx)
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Food", categories[0].Title)
	s.Equal("Rent", categories[1].Title)
	s.Equal("Salary", categories[2].Title)
}

func (s *CategoryRepositorySuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.FindByTitles(ctx, []string{"Food"})
	s.Error(err)
}
