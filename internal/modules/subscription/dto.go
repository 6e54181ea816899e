package subscription

import "foodgram/internal/domain"

// RecipePreview — сокращённая карточка рецепта внутри подписки.
type RecipePreview struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// AuthorView is what a follower sees for each author: the profile, a
// preview of the latest recipes (possibly truncated by recipes_limit)
// and the full recipe count.
type AuthorView struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	Username     string          `json:"username"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	IsSubscribed bool            `json:"is_subscribed"`
	Recipes      []RecipePreview `json:"recipes"`
	RecipesCount int64           `json:"recipes_count"`
}

func newRecipePreviews(recipes []domain.Recipe) []RecipePreview {
	previews := make([]RecipePreview, 0, len(recipes))
	for i := range recipes {
		previews = append(previews, RecipePreview{
			ID:          recipes[i].ID,
			Name:        recipes[i].Name,
			Image:       recipes[i].Image,
			CookingTime: recipes[i].CookingTime,
		})
	}
	return previews
}
