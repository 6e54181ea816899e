package subscription

import (
	"context"
	"errors"

	"foodgram/internal/domain"
	"foodgram/internal/repository"
)

// Service manages follower-author links and the subscriptions feed.
type Service struct {
	users         repository.UserRepository
	subscriptions repository.SubscriptionRepository
	recipes       repository.RecipeRepository
}

func NewService(users repository.UserRepository, subscriptions repository.SubscriptionRepository, recipes repository.RecipeRepository) *Service {
	return &Service{users: users, subscriptions: subscriptions, recipes: recipes}
}

// Subscribe follows the author on behalf of followerID and returns the
// author view the client renders in place. Self-subscription is rejected
// before touching the database; duplicates are resolved by the unique
// index on (follower, author).
func (s *Service) Subscribe(ctx context.Context, followerID, authorID int64, recipesLimit int) (*AuthorView, error) {
	if followerID == authorID {
		return nil, ErrSelfSubscription
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	if err := s.subscriptions.Add(ctx, followerID, authorID); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return s.authorView(ctx, author, recipesLimit)
}

// Unsubscribe removes the link. Removing a link that does not exist is
// reported as ErrNotSubscribed, never as success.
func (s *Service) Unsubscribe(ctx context.Context, followerID, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAuthorNotFound
		}
		return err
	}

	if err := s.subscriptions.Remove(ctx, followerID, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotSubscribed
		}
		return err
	}
	return nil
}

// Subscriptions returns the follower's feed page: every followed author
// with a recipe preview (truncated to recipesLimit, 0 = all) and the
// author's full recipe count.
func (s *Service) Subscriptions(ctx context.Context, followerID int64, recipesLimit, limit, offset int) ([]AuthorView, int64, error) {
	authors, total, err := s.subscriptions.ListAuthors(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]AuthorView, 0, len(authors))
	for i := range authors {
		view, err := s.authorView(ctx, &authors[i], recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func (s *Service) authorView(ctx context.Context, author *domain.User, recipesLimit int) (*AuthorView, error) {
	recipes, err := s.recipes.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &AuthorView{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      newRecipePreviews(recipes),
		RecipesCount: count,
	}, nil
}
