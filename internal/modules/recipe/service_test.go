package recipe

import (
	"context"
	"testing"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag, items []domain.RecipeIngredient) error {
	args := m.Called(ctx, recipe, tags, items)
	if recipe != nil {
		recipe.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag, items []domain.RecipeIngredient, replaceIngredients bool) error {
	args := m.Called(ctx, recipe, tags, items, replaceIngredients)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, recipeID int64) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context, f repository.RecipeFilters) ([]domain.Recipe, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	args := m.Called(ctx, authorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Search(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, namePrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FilterByUser(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCartRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) FilterByUser(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockCartRepository) AggregateShoppingList(ctx context.Context, userID int64) ([]repository.ShoppingListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShoppingListItem), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Add(ctx context.Context, followerID, authorID int64) error {
	args := m.Called(ctx, followerID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Remove(ctx context.Context, followerID, authorID int64) error {
	args := m.Called(ctx, followerID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	args := m.Called(ctx, followerID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListAuthors(ctx context.Context, followerID int64, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, followerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type mocks struct {
	recipes       *MockRecipeRepository
	tags          *MockTagRepository
	ingredients   *MockIngredientRepository
	favorites     *MockFavoriteRepository
	carts         *MockCartRepository
	subscriptions *MockSubscriptionRepository
}

func newTestService() (*Service, *mocks) {
	m := &mocks{
		recipes:       new(MockRecipeRepository),
		tags:          new(MockTagRepository),
		ingredients:   new(MockIngredientRepository),
		favorites:     new(MockFavoriteRepository),
		carts:         new(MockCartRepository),
		subscriptions: new(MockSubscriptionRepository),
	}
	svc := NewService(m.recipes, m.tags, m.ingredients, m.favorites, m.carts, m.subscriptions)
	return svc, m
}

func sampleRecipe(id, authorID int64) *domain.Recipe {
	return &domain.Recipe{
		ID:          id,
		AuthorID:    authorID,
		Name:        "Борщ",
		Image:       "/media/recipes/borsch.jpg",
		Text:        "Варить час.",
		CookingTime: 60,
		Author: &domain.User{
			ID:       authorID,
			Email:    "chef@example.com",
			Username: "chef",
		},
		Tags: []domain.Tag{{ID: 1, Name: "Обед", Slug: "lunch"}},
		Ingredients: []domain.RecipeIngredient{
			{RecipeID: id, IngredientID: 5, Amount: 300, Ingredient: &domain.Ingredient{ID: 5, Name: "свёкла", MeasurementUnit: "г"}},
		},
	}
}

func TestService_Create_DuplicateIngredientRejected(t *testing.T) {
	svc, m := newTestService()

	req := CreateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 60,
		Tags:        []int64{1},
		Ingredients: []IngredientAmount{
			{ID: 5, Amount: 300},
			{ID: 5, Amount: 100},
		},
	}

	_, err := svc.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)
	// validation failures must be decided before any repository access
	m.tags.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	m.ingredients.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestService_Create_CookingTimeOutOfRange(t *testing.T) {
	svc, m := newTestService()

	req := CreateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 33000,
		Tags:        []int64{1},
		Ingredients: []IngredientAmount{{ID: 5, Amount: 300}},
	}

	_, err := svc.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, domain.ErrCookingTimeOutOfRange)
	m.tags.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestService_Create_EmptyTagsRejected(t *testing.T) {
	svc, _ := newTestService()

	req := CreateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 60,
		Tags:        nil,
		Ingredients: []IngredientAmount{{ID: 5, Amount: 300}},
	}

	_, err := svc.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, domain.ErrNoTags)
}

func TestService_Create_UnknownIngredient(t *testing.T) {
	svc, m := newTestService()

	m.tags.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Tag{{ID: 1}}, nil)
	m.ingredients.On("GetByIDs", mock.Anything, []int64{5}).Return([]domain.Ingredient{}, nil)

	req := CreateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 60,
		Tags:        []int64{1},
		Ingredients: []IngredientAmount{{ID: 5, Amount: 300}},
	}

	_, err := svc.Create(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestService_Create_Success(t *testing.T) {
	svc, m := newTestService()

	m.tags.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Tag{{ID: 1, Name: "Обед", Slug: "lunch"}}, nil)
	m.ingredients.On("GetByIDs", mock.Anything, []int64{5}).Return([]domain.Ingredient{{ID: 5, Name: "свёкла", MeasurementUnit: "г"}}, nil)
	m.recipes.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.recipes.On("GetByID", mock.Anything, int64(777)).Return(sampleRecipe(777, 1), nil)
	m.favorites.On("FilterByUser", mock.Anything, int64(1), []int64{777}).Return(map[int64]bool{}, nil)
	m.carts.On("FilterByUser", mock.Anything, int64(1), []int64{777}).Return(map[int64]bool{}, nil)

	req := CreateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 60,
		Tags:        []int64{1},
		Ingredients: []IngredientAmount{{ID: 5, Amount: 300}},
	}

	view, err := svc.Create(context.Background(), 1, req)

	assert.NoError(t, err)
	assert.NotNil(t, view)
	assert.Equal(t, int64(777), view.ID)
	assert.Equal(t, "Борщ", view.Name)
	assert.Len(t, view.Ingredients, 1)
	assert.Equal(t, "свёкла", view.Ingredients[0].Name)
	assert.False(t, view.Author.IsSubscribed)
}

func TestService_Update_ForbiddenForNonAuthor(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)

	req := UpdateRecipeRequest{
		Name:        "Чужой рецепт",
		CookingTime: 20,
		Tags:        []int64{1},
	}

	_, err := svc.Update(context.Background(), 10, 2, req)

	assert.ErrorIs(t, err, ErrNotOwner)
	m.recipes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_EmptyIngredientsKeepsStoredRows(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)
	m.tags.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Tag{{ID: 1}}, nil)
	m.recipes.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, false).Return(nil)
	m.favorites.On("FilterByUser", mock.Anything, int64(1), []int64{10}).Return(map[int64]bool{}, nil)
	m.carts.On("FilterByUser", mock.Anything, int64(1), []int64{10}).Return(map[int64]bool{}, nil)

	req := UpdateRecipeRequest{
		Name:        "Борщ обновлённый",
		CookingTime: 45,
		Tags:        []int64{1},
		Ingredients: nil,
	}

	view, err := svc.Update(context.Background(), 10, 1, req)

	assert.NoError(t, err)
	assert.NotNil(t, view)
	m.ingredients.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	m.recipes.AssertCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, false)
}

func TestService_Update_DuplicateIngredientRejected(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)

	req := UpdateRecipeRequest{
		Name:        "Борщ",
		CookingTime: 60,
		Tags:        []int64{1},
		Ingredients: []IngredientAmount{
			{ID: 5, Amount: 300},
			{ID: 5, Amount: 100},
		},
	}

	_, err := svc.Update(context.Background(), 10, 1, req)

	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)
	m.tags.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	m.ingredients.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	m.recipes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	err := svc.Delete(context.Background(), 404, 1)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestService_AddFavorite_Conflict(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)
	m.favorites.On("Add", mock.Anything, int64(2), int64(10)).Return(repository.ErrDuplicateKey)

	_, err := svc.AddFavorite(context.Background(), 2, 10)

	assert.ErrorIs(t, err, ErrAlreadyFavorited)
}

func TestService_AddFavorite_ReturnsShortView(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)
	m.favorites.On("Add", mock.Anything, int64(2), int64(10)).Return(nil)

	view, err := svc.AddFavorite(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, "Борщ", view.Name)
	assert.Equal(t, 60, view.CookingTime)
}

func TestService_RemoveFromCart_NotPresent(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("GetByID", mock.Anything, int64(10)).Return(sampleRecipe(10, 1), nil)
	m.carts.On("Remove", mock.Anything, int64(2), int64(10)).Return(repository.ErrNotFound)

	err := svc.RemoveFromCart(context.Background(), 2, 10)

	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestService_List_AnonymousFlagsFalse(t *testing.T) {
	svc, m := newTestService()

	recipes := []domain.Recipe{*sampleRecipe(10, 1)}
	m.recipes.On("List", mock.Anything, mock.Anything).Return(recipes, int64(1), nil)
	m.favorites.On("FilterByUser", mock.Anything, int64(0), []int64{10}).Return(map[int64]bool{}, nil)
	m.carts.On("FilterByUser", mock.Anything, int64(0), []int64{10}).Return(map[int64]bool{}, nil)

	views, total, err := svc.List(context.Background(), 0, ListFilters{Limit: 20})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, views, 1)
	assert.False(t, views[0].IsFavorited)
	assert.False(t, views[0].IsInShoppingCart)
	assert.False(t, views[0].Author.IsSubscribed)
	m.subscriptions.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_ViewerFlags(t *testing.T) {
	svc, m := newTestService()

	recipes := []domain.Recipe{*sampleRecipe(10, 1)}
	m.recipes.On("List", mock.Anything, mock.Anything).Return(recipes, int64(1), nil)
	m.favorites.On("FilterByUser", mock.Anything, int64(2), []int64{10}).Return(map[int64]bool{10: true}, nil)
	m.carts.On("FilterByUser", mock.Anything, int64(2), []int64{10}).Return(map[int64]bool{}, nil)
	m.subscriptions.On("Exists", mock.Anything, int64(2), int64(1)).Return(true, nil)

	views, _, err := svc.List(context.Background(), 2, ListFilters{Limit: 20})

	assert.NoError(t, err)
	assert.True(t, views[0].IsFavorited)
	assert.False(t, views[0].IsInShoppingCart)
	assert.True(t, views[0].Author.IsSubscribed)
}

func TestService_List_FavoritedFilterIgnoredForAnonymous(t *testing.T) {
	svc, m := newTestService()

	m.recipes.On("List", mock.Anything, repository.RecipeFilters{Limit: 20}).Return([]domain.Recipe{}, int64(0), nil)
	m.favorites.On("FilterByUser", mock.Anything, int64(0), []int64{}).Return(map[int64]bool{}, nil)
	m.carts.On("FilterByUser", mock.Anything, int64(0), []int64{}).Return(map[int64]bool{}, nil)

	_, _, err := svc.List(context.Background(), 0, ListFilters{OnlyFavorited: true, OnlyInCart: true, Limit: 20})

	assert.NoError(t, err)
	m.recipes.AssertCalled(t, "List", mock.Anything, repository.RecipeFilters{Limit: 20})
}

func TestRenderShoppingList_Format(t *testing.T) {
	items := []repository.ShoppingListItem{
		{Name: "мука", MeasurementUnit: "г", TotalAmount: 350},
		{Name: "яйцо", MeasurementUnit: "шт", TotalAmount: 4},
	}

	text := RenderShoppingList(items)

	assert.Equal(t, "Список покупок.\nмука, 350 г\nяйцо, 4 шт\n", text)
}

func TestRenderShoppingList_EmptyCart(t *testing.T) {
	text := RenderShoppingList(nil)

	assert.Equal(t, "Список покупок.\n", text)
}
