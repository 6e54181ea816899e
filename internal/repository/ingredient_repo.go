package repository

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Search(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// Search lists ingredients, optionally narrowed to a case-insensitive name
// prefix. LIKE wildcards in the prefix are escaped, a user searching for
// "%" must not match everything. The reference list is small, no pagination.
func (r *ingredientRepository) Search(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	query := r.db.WithContext(ctx).Order("name, id")
	if namePrefix != "" {
		pattern := escapeLike(strings.ToLower(namePrefix)) + "%"
		if r.db.Dialector.Name() == "postgres" {
			query = query.Where(`name ILIKE ? ESCAPE '\'`, pattern)
		} else {
			query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
		}
	}

	var ingredients []domain.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
