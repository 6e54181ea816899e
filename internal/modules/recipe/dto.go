package recipe

import "foodgram/internal/domain"

// IngredientAmount — пара (ингредиент, количество) в запросе на
// создание/обновление рецепта.
type IngredientAmount struct {
	ID     int64 `json:"id" binding:"required" validate:"required"`
	Amount int   `json:"amount" validate:"gte=0,lte=32000"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" binding:"required"`
	Image       string             `json:"image"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time" validate:"gte=0,lte=32000"`
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"dive"`
}

// UpdateRecipeRequest повторяет CreateRecipeRequest, но пустой список
// ингредиентов означает "не трогать" — существующие строки остаются.
type UpdateRecipeRequest struct {
	Name        string             `json:"name" binding:"required"`
	Image       string             `json:"image"`
	Text        string             `json:"text"`
	CookingTime int                `json:"cooking_time" validate:"gte=0,lte=32000"`
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"dive"`
}

// AuthorView mirrors the user view; is_subscribed is relative to the viewer.
type AuthorView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Amount          int    `json:"amount"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeView — полное представление рецепта для списков и деталки.
type RecipeView struct {
	ID               int64            `json:"id"`
	Tags             []domain.Tag     `json:"tags"`
	Author           AuthorView       `json:"author"`
	Ingredients      []IngredientView `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
}

// ShortView — сокращённое представление для ответов избранного и корзины.
type ShortView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func newShortView(r *domain.Recipe) ShortView {
	return ShortView{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// Filters accepted by the listing endpoint.
type ListFilters struct {
	AuthorID      int64
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
	Limit         int
	Offset        int
}
