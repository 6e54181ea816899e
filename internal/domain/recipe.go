package domain

import (
	"errors"
	"time"
)

// Bounds shared by cooking_time and ingredient amounts.
const (
	MinAmount = 0
	MaxAmount = 32000
)

var (
	ErrCookingTimeOutOfRange = errors.New("cooking time must be between 0 and 32000")
	ErrAmountOutOfRange      = errors.New("ingredient amount must be between 0 and 32000")
	ErrNoTags                = errors.New("recipe requires at least one tag")
	ErrNoIngredients         = errors.New("recipe requires at least one ingredient")
	ErrDuplicateIngredient   = errors.New("recipe lists the same ingredient twice")
)

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Image       string    `json:"image" gorm:"type:text"`
	Text        string    `json:"text" gorm:"type:text"`
	CookingTime int       `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient — количество одного ингредиента в одном рецепте.
// Живёт только вместе с рецептом: при обновлении набор заменяется целиком.
type RecipeIngredient struct {
	ID           int64 `json:"-" gorm:"primaryKey"`
	RecipeID     int64 `json:"-" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64 `json:"id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int   `json:"amount"`

	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// IngredientSpec is the (ingredient, amount) pair accepted on create/update.
type IngredientSpec struct {
	IngredientID int64
	Amount       int
}

// ValidateCookingTime enforces the [MinAmount, MaxAmount] bound.
func ValidateCookingTime(minutes int) error {
	if minutes < MinAmount || minutes > MaxAmount {
		return ErrCookingTimeOutOfRange
	}
	return nil
}

// ValidateTagIDs rejects an empty tag set.
func ValidateTagIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrNoTags
	}
	return nil
}

// ValidateIngredientSpecs rejects an empty set, out-of-range amounts and
// repeated ingredient ids (the same ingredient may not appear twice in one
// recipe, even with different amounts).
func ValidateIngredientSpecs(specs []IngredientSpec) error {
	if len(specs) == 0 {
		return ErrNoIngredients
	}
	seen := make(map[int64]struct{}, len(specs))
	for _, spec := range specs {
		if spec.Amount < MinAmount || spec.Amount > MaxAmount {
			return ErrAmountOutOfRange
		}
		if _, ok := seen[spec.IngredientID]; ok {
			return ErrDuplicateIngredient
		}
		seen[spec.IngredientID] = struct{}{}
	}
	return nil
}
