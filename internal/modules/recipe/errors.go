package recipe

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotOwner           = errors.New("only the author can modify the recipe")
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrAlreadyFavorited   = errors.New("recipe is already in favorites")
	ErrNotFavorited       = errors.New("recipe is not in favorites")
	ErrAlreadyInCart      = errors.New("recipe is already in the shopping cart")
	ErrNotInCart          = errors.New("recipe is not in the shopping cart")
)
