package recipe

import (
	"context"
	"errors"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// Service is the write side of the recipe domain plus the view assembly:
// create/update/delete, favorite and shopping-cart toggles, and the
// shopping-list aggregation. Every operation takes the acting user id
// explicitly — there is no ambient "current user".
type Service struct {
	recipes       repository.RecipeRepository
	tags          repository.TagRepository
	ingredients   repository.IngredientRepository
	favorites     repository.FavoriteRepository
	carts         repository.CartRepository
	subscriptions repository.SubscriptionRepository
}

func NewService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	favorites repository.FavoriteRepository,
	carts repository.CartRepository,
	subscriptions repository.SubscriptionRepository,
) *Service {
	return &Service{
		recipes:       recipes,
		tags:          tags,
		ingredients:   ingredients,
		favorites:     favorites,
		carts:         carts,
		subscriptions: subscriptions,
	}
}

// Create validates the payload, resolves the referenced tags and
// ingredients and persists the recipe with its associations in one
// transaction. Field validation completes before the first repository
// call; any failure leaves no partial recipe behind.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (*RecipeView, error) {
	specs := ingredientSpecs(req.Ingredients)
	if err := domain.ValidateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}
	if err := domain.ValidateTagIDs(req.Tags); err != nil {
		return nil, err
	}
	if err := domain.ValidateIngredientSpecs(specs); err != nil {
		return nil, err
	}

	tagRows, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveIngredientRows(ctx, specs)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := s.recipes.Create(ctx, rec, tagRows, items); err != nil {
		return nil, err
	}

	return s.Get(ctx, authorID, rec.ID)
}

// Update applies a full update on behalf of actingUserID. Tags are always
// replaced wholesale. A non-empty ingredient list replaces the stored rows
// (delete then bulk insert); an empty list leaves them untouched, the
// historical contract the API clients rely on.
func (s *Service) Update(ctx context.Context, recipeID, actingUserID int64, req UpdateRecipeRequest) (*RecipeView, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if rec.AuthorID != actingUserID {
		return nil, ErrNotOwner
	}

	replaceIngredients := len(req.Ingredients) > 0

	if err := domain.ValidateCookingTime(req.CookingTime); err != nil {
		return nil, err
	}
	if err := domain.ValidateTagIDs(req.Tags); err != nil {
		return nil, err
	}
	var specs []domain.IngredientSpec
	if replaceIngredients {
		specs = ingredientSpecs(req.Ingredients)
		if err := domain.ValidateIngredientSpecs(specs); err != nil {
			return nil, err
		}
	}

	tagRows, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	var items []domain.RecipeIngredient
	if replaceIngredients {
		items, err = s.resolveIngredientRows(ctx, specs)
		if err != nil {
			return nil, err
		}
	}

	rec.Name = req.Name
	rec.Image = req.Image
	rec.Text = req.Text
	rec.CookingTime = req.CookingTime

	if err := s.recipes.Update(ctx, rec, tagRows, items, replaceIngredients); err != nil {
		return nil, err
	}

	return s.Get(ctx, actingUserID, rec.ID)
}

// Delete removes the recipe and every row referencing it. Author only.
func (s *Service) Delete(ctx context.Context, recipeID, actingUserID int64) error {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if rec.AuthorID != actingUserID {
		return ErrNotOwner
	}
	return s.recipes.Delete(ctx, recipeID)
}

// Get assembles the full recipe view relative to the viewer (0 = anonymous).
func (s *Service) Get(ctx context.Context, viewerID, recipeID int64) (*RecipeView, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	views, err := s.assembleViews(ctx, viewerID, []domain.Recipe{*rec})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// List returns a page of recipe views, newest first, narrowed by the
// filters. The favorited/in-cart filters are relative to the viewer and
// are no-ops for anonymous requests.
func (s *Service) List(ctx context.Context, viewerID int64, f ListFilters) ([]RecipeView, int64, error) {
	filters := repository.RecipeFilters{
		AuthorID: f.AuthorID,
		TagSlugs: f.TagSlugs,
		Limit:    f.Limit,
		Offset:   f.Offset,
	}
	if f.OnlyFavorited && viewerID != 0 {
		filters.FavoritedBy = viewerID
	}
	if f.OnlyInCart && viewerID != 0 {
		filters.InCartOf = viewerID
	}

	recipes, total, err := s.recipes.List(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.assembleViews(ctx, viewerID, recipes)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// AddFavorite bookmarks the recipe for the user. The unique index decides
// the winner between concurrent identical requests.
func (s *Service) AddFavorite(ctx context.Context, userID, recipeID int64) (*ShortView, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.favorites.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	view := newShortView(rec)
	return &view, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if err := s.favorites.Remove(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFavorited
		}
		return err
	}
	return nil
}

// AddToCart puts the recipe into the user's shopping cart. Same contract
// as AddFavorite, different relation.
func (s *Service) AddToCart(ctx context.Context, userID, recipeID int64) (*ShortView, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.carts.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}

	view := newShortView(rec)
	return &view, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if err := s.carts.Remove(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotInCart
		}
		return err
	}
	return nil
}

// ShoppingList returns the aggregated shopping list for the user's cart.
// An empty cart is not an error, just an empty list.
func (s *Service) ShoppingList(ctx context.Context, userID int64) ([]repository.ShoppingListItem, error) {
	return s.carts.AggregateShoppingList(ctx, userID)
}

func ingredientSpecs(ingredients []IngredientAmount) []domain.IngredientSpec {
	specs := make([]domain.IngredientSpec, 0, len(ingredients))
	for _, ing := range ingredients {
		specs = append(specs, domain.IngredientSpec{IngredientID: ing.ID, Amount: ing.Amount})
	}
	return specs
}

func (s *Service) resolveTags(ctx context.Context, tagIDs []int64) ([]domain.Tag, error) {
	tagRows, err := s.tags.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tagRows) != len(uniqueIDs(tagIDs)) {
		return nil, ErrTagNotFound
	}
	return tagRows, nil
}

// resolveIngredientRows turns already-validated specs into persistence
// rows, checking every referenced ingredient exists.
func (s *Service) resolveIngredientRows(ctx context.Context, specs []domain.IngredientSpec) ([]domain.RecipeIngredient, error) {
	ids := make([]int64, 0, len(specs))
	for _, spec := range specs {
		ids = append(ids, spec.IngredientID)
	}
	rows, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(ids) {
		return nil, ErrIngredientNotFound
	}

	items := make([]domain.RecipeIngredient, 0, len(specs))
	for _, spec := range specs {
		items = append(items, domain.RecipeIngredient{
			IngredientID: spec.IngredientID,
			Amount:       spec.Amount,
		})
	}
	return items, nil
}

// assembleViews builds the full views for a page of recipes. The
// favorited/in-cart flags come from one batched query per relation;
// is_subscribed is checked once per distinct author.
func (s *Service) assembleViews(ctx context.Context, viewerID int64, recipes []domain.Recipe) ([]RecipeView, error) {
	ids := make([]int64, 0, len(recipes))
	for i := range recipes {
		ids = append(ids, recipes[i].ID)
	}

	favorited, err := s.favorites.FilterByUser(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	inCart, err := s.carts.FilterByUser(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	subscribed := make(map[int64]bool)
	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		rec := &recipes[i]

		author := AuthorView{ID: rec.AuthorID}
		if rec.Author != nil {
			author.Email = rec.Author.Email
			author.Username = rec.Author.Username
			author.FirstName = rec.Author.FirstName
			author.LastName = rec.Author.LastName
		}
		if viewerID != 0 && viewerID != rec.AuthorID {
			isSub, ok := subscribed[rec.AuthorID]
			if !ok {
				isSub, err = s.subscriptions.Exists(ctx, viewerID, rec.AuthorID)
				if err != nil {
					return nil, err
				}
				subscribed[rec.AuthorID] = isSub
			}
			author.IsSubscribed = isSub
		}

		ingredientViews := make([]IngredientView, 0, len(rec.Ingredients))
		for _, item := range rec.Ingredients {
			view := IngredientView{ID: item.IngredientID, Amount: item.Amount}
			if item.Ingredient != nil {
				view.Name = item.Ingredient.Name
				view.MeasurementUnit = item.Ingredient.MeasurementUnit
			}
			ingredientViews = append(ingredientViews, view)
		}

		tags := rec.Tags
		if tags == nil {
			tags = []domain.Tag{}
		}

		views = append(views, RecipeView{
			ID:               rec.ID,
			Tags:             tags,
			Author:           author,
			Ingredients:      ingredientViews,
			IsFavorited:      favorited[rec.ID],
			IsInShoppingCart: inCart[rec.ID],
			Name:             rec.Name,
			Image:            rec.Image,
			Text:             rec.Text,
			CookingTime:      rec.CookingTime,
		})
	}
	return views, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
