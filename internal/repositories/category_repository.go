package repositories

import (
	"context"
	"fmt"

	"transaction-importer/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lookupChunkSize bounds the number of bind parameters in a single IN clause
const lookupChunkSize = 1000

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// FindByTitles retrieves the categories matching any of the given titles
func (r *categoryRepository) FindByTitles(ctx context.Context, titles []string) ([]models.Category, error) {
	if len(titles) == 0 {
		return []models.Category{}, nil
	}

	return findCategoriesByTitles(r.db.WithContext(ctx), titles)
}

// CreateBatch creates categories for the given titles in a single database transaction.
// The insert skips titles that collide with the unique title index, and the rows are
// re-read afterwards so callers always get the persisted identity of every title.
func (r *categoryRepository) CreateBatch(ctx context.Context, titles []string) ([]models.Category, error) {
	if len(titles) == 0 {
		return []models.Category{}, nil
	}

	categories := make([]models.Category, len(titles))
	for i, title := range titles {
		categories[i] = models.Category{Title: title}
	}

	var persisted []models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to create batch categories: %w", err)
		}

		found, err := findCategoriesByTitles(tx, titles)
		if err != nil {
			return err
		}
		persisted = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orderByTitles(persisted, titles), nil
}

// GetAll retrieves every category ordered by title
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func findCategoriesByTitles(db *gorm.DB, titles []string) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(titles))
	for start := 0; start < len(titles); start += lookupChunkSize {
		end := min(start+lookupChunkSize, len(titles))

		var chunk []models.Category
		if err := db.Where("title IN ?", titles[start:end]).Find(&chunk).Error; err != nil {
			return nil, fmt.Errorf("failed to find categories by titles: %w", err)
		}
		categories = append(categories, chunk...)
	}
	return categories, nil
}

// orderByTitles returns categories in the order their titles appear in titles
func orderByTitles(categories []models.Category, titles []string) []models.Category {
	index := models.IndexCategoriesByTitle(categories)
	ordered := make([]models.Category, 0, len(categories))
	for _, title := range titles {
		if category, ok := index[title]; ok {
			ordered = append(ordered, *category)
			delete(index, title)
		}
	}
	return ordered
}
