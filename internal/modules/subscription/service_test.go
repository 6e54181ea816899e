package subscription

import (
	"context"
	"testing"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
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

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag, items []domain.RecipeIngredient) error {
	args := m.Called(ctx, recipe, tags, items)
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

func newTestService() (*Service, *MockUserRepository, *MockSubscriptionRepository, *MockRecipeRepository) {
	users := new(MockUserRepository)
	subs := new(MockSubscriptionRepository)
	recipes := new(MockRecipeRepository)
	return NewService(users, subs, recipes), users, subs, recipes
}

func sampleAuthor(id int64) *domain.User {
	return &domain.User{
		ID:        id,
		Email:     "chef@example.com",
		Username:  "chef",
		FirstName: "Айгерим",
		LastName:  "Садыкова",
	}
}

func TestService_Subscribe_Self(t *testing.T) {
	svc, _, subs, _ := newTestService()

	_, err := svc.Subscribe(context.Background(), 1, 1, 0)

	assert.ErrorIs(t, err, ErrSelfSubscription)
	subs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Subscribe_AuthorNotFound(t *testing.T) {
	svc, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.Subscribe(context.Background(), 1, 404, 0)

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestService_Subscribe_Duplicate(t *testing.T) {
	svc, users, subs, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(sampleAuthor(2), nil)
	subs.On("Add", mock.Anything, int64(1), int64(2)).Return(repository.ErrDuplicateKey)

	_, err := svc.Subscribe(context.Background(), 1, 2, 0)

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestService_Subscribe_Success(t *testing.T) {
	svc, users, subs, recipes := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(sampleAuthor(2), nil)
	subs.On("Add", mock.Anything, int64(1), int64(2)).Return(nil)
	recipes.On("ListByAuthor", mock.Anything, int64(2), 0).Return([]domain.Recipe{
		{ID: 10, Name: "Борщ", Image: "/media/1.jpg", CookingTime: 60},
		{ID: 11, Name: "Плов", Image: "/media/2.jpg", CookingTime: 90},
	}, nil)
	recipes.On("CountByAuthor", mock.Anything, int64(2)).Return(int64(2), nil)

	view, err := svc.Subscribe(context.Background(), 1, 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), view.ID)
	assert.True(t, view.IsSubscribed)
	assert.Len(t, view.Recipes, 2)
	assert.Equal(t, int64(2), view.RecipesCount)
}

func TestService_Unsubscribe_NotSubscribed(t *testing.T) {
	svc, users, subs, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(sampleAuthor(2), nil)
	subs.On("Remove", mock.Anything, int64(1), int64(2)).Return(repository.ErrNotFound)

	err := svc.Unsubscribe(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestService_Unsubscribe_Success(t *testing.T) {
	svc, users, subs, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(sampleAuthor(2), nil)
	subs.On("Remove", mock.Anything, int64(1), int64(2)).Return(nil)

	err := svc.Unsubscribe(context.Background(), 1, 2)

	assert.NoError(t, err)
}

func TestService_Subscriptions_RecipesLimitTruncatesPreviewOnly(t *testing.T) {
	svc, _, subs, recipes := newTestService()

	subs.On("ListAuthors", mock.Anything, int64(1), 20, 0).Return([]domain.User{*sampleAuthor(2)}, int64(1), nil)
	recipes.On("ListByAuthor", mock.Anything, int64(2), 1).Return([]domain.Recipe{
		{ID: 10, Name: "Борщ", CookingTime: 60},
	}, nil)
	recipes.On("CountByAuthor", mock.Anything, int64(2)).Return(int64(5), nil)

	views, total, err := svc.Subscriptions(context.Background(), 1, 1, 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, views, 1)
	assert.Len(t, views[0].Recipes, 1)
	assert.Equal(t, int64(5), views[0].RecipesCount)
}
