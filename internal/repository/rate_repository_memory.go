package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/credit-simulator/internal/models"
)

// DefaultCategories is the rate table used when no database is configured.
var DefaultCategories = []models.RateCategory{
	{Name: "Funcionários de condomínios", Unrestricted: 6.68, Restricted: 7.68},
	{Name: "Administradoras e Síndicos profissionais", Unrestricted: 7.56, Restricted: 8.56},
	{Name: "Empresas - antecipação de boletos", Unrestricted: 9.86, Restricted: 10.86},
	{Name: "Empresas de energia solar", Unrestricted: 3.85, Restricted: 3.85},
}

// RateRepositoryMemory is a read-only in-memory RateRepository.
type RateRepositoryMemory struct {
	categories []models.RateCategory
}

// NewRateRepositoryMemory creates a repository serving the given categories.
func NewRateRepositoryMemory(categories []models.RateCategory) *RateRepositoryMemory {
	cp := make([]models.RateCategory, len(categories))
	copy(cp, categories)
	return &RateRepositoryMemory{categories: cp}
}

func (r *RateRepositoryMemory) ListCategories(ctx context.Context) ([]models.RateCategory, error) {
	cp := make([]models.RateCategory, len(r.categories))
	copy(cp, r.categories)
	return cp, nil
}

func (r *RateRepositoryMemory) FindCategory(ctx context.Context, name string) (models.RateCategory, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return models.RateCategory{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
}
