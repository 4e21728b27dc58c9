package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/credit-simulator/internal/models"
)

// ErrCategoryNotFound is returned when no rate category has the given name.
var ErrCategoryNotFound = errors.New("rate category not found")

// RateRepository provides the rate-category catalogue.
type RateRepository interface {
	ListCategories(ctx context.Context) ([]models.RateCategory, error)
	FindCategory(ctx context.Context, name string) (models.RateCategory, error)
}

// Repository reads rate categories from PostgreSQL
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every rate category ordered by position
func (r *Repository) ListCategories(ctx context.Context) ([]models.RateCategory, error) {
	query := `
		SELECT name, rate_unrestricted, rate_restricted
		FROM credit.rate_categories
		ORDER BY position, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate categories: %w", err)
	}
	defer rows.Close()

	var categories []models.RateCategory
	for rows.Next() {
		var c models.RateCategory
		if err := rows.Scan(&c.Name, &c.Unrestricted, &c.Restricted); err != nil {
			return nil, fmt.Errorf("failed to scan rate category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rate categories: %w", err)
	}
	return categories, nil
}

// FindCategory retrieves a rate category by name
func (r *Repository) FindCategory(ctx context.Context, name string) (models.RateCategory, error) {
	var c models.RateCategory
	query := `
		SELECT name, rate_unrestricted, rate_restricted
		FROM credit.rate_categories
		WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&c.Name, &c.Unrestricted, &c.Restricted)
	if err == sql.ErrNoRows {
		return models.RateCategory{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	if err != nil {
		return models.RateCategory{}, fmt.Errorf("failed to find rate category: %w", err)
	}
	return c, nil
}
