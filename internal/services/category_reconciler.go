package services

import (
	"context"
	"fmt"

	"transaction-importer/internal/models"
	"transaction-importer/internal/repositories"
)

// CategoryResolution maps every observed category label to its persisted record
type CategoryResolution struct {
	Categories models.CategoryIndex
	Created    []models.Category
	Existing   []models.Category
}

// Lookup returns the category resolved for label
func (r *CategoryResolution) Lookup(label string) (*models.Category, bool) {
	if r == nil {
		return nil, false
	}
	category, ok := r.Categories[label]
	return category, ok
}

// CategoryReconciler matches category labels against persisted categories and
// creates the ones that do not exist yet
type CategoryReconciler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryReconciler creates a new category reconciler
func NewCategoryReconciler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryReconciler {
	return &CategoryReconciler{
		categoryRepo: categoryRepo,
	}
}

// Reconcile resolves labels with one batch lookup and at most one batch insert.
// Labels match titles exactly, case included.
func (c *CategoryReconciler) Reconcile(ctx context.Context, labels []string) (*CategoryResolution, error) {
	resolution := &CategoryResolution{
		Categories: models.CategoryIndex{},
		Created:    []models.Category{},
		Existing:   []models.Category{},
	}

	unique := uniqueLabels(labels)
	if len(unique) == 0 {
		return resolution, nil
	}

	existing, err := c.categoryRepo.FindByTitles(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to look up categories: %w", err)
	}
	resolution.Existing = existing

	known := models.IndexCategoriesByTitle(existing)
	missing := make([]string, 0, len(unique))
	for _, label := range unique {
		if _, ok := known[label]; !ok {
			missing = append(missing, label)
		}
	}

	if len(missing) > 0 {
		created, err := c.categoryRepo.CreateBatch(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to create categories: %w", err)
		}
		resolution.Created = created
	}

	resolved := make([]models.Category, 0, len(resolution.Existing)+len(resolution.Created))
	resolved = append(resolved, resolution.Existing...)
	resolved = append(resolved, resolution.Created...)
	resolution.Categories = models.IndexCategoriesByTitle(resolved)

	return resolution, nil
}

// uniqueLabels deduplicates labels keeping first-seen order
func uniqueLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	unique := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		unique = append(unique, label)
	}
	return unique
}
