package catalog

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// Service exposes the read-only reference data: tags and ingredients.
// Both sets are managed out-of-band (cmd/seed), the API never mutates them.
type Service struct {
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
}

func NewService(tags repository.TagRepository, ingredients repository.IngredientRepository) *Service {
	return &Service{tags: tags, ingredients: ingredients}
}

func (s *Service) Tags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.GetAll(ctx)
}

func (s *Service) Tag(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

// Ingredients searches by case-insensitive name prefix; an empty prefix
// returns the whole reference list.
func (s *Service) Ingredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	return s.ingredients.Search(ctx, namePrefix)
}

func (s *Service) Ingredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.ingredients.GetByID(ctx, id)
}
