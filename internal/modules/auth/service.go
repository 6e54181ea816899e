package auth

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// Service contains registration, login and user-profile logic. The rest
// of the system only ever sees the authenticated user id the middleware
// extracts from the token this service issues.
type Service struct {
	users         repository.UserRepository
	subscriptions repository.SubscriptionRepository
	jwt           jwtService
}

func NewService(users repository.UserRepository, subscriptions repository.SubscriptionRepository, jwt jwtService) *Service {
	return &Service{
		users:         users,
		subscriptions: subscriptions,
		jwt:           jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: NewUserView(user, false)}, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUser assembles the public view of a user relative to the viewer.
// viewerID == 0 means anonymous.
func (s *Service) GetUser(ctx context.Context, viewerID, userID int64) (*UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isSubscribed := false
	if viewerID != 0 && viewerID != userID {
		isSubscribed, err = s.subscriptions.Exists(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	view := NewUserView(user, isSubscribed)
	return &view, nil
}

func (s *Service) ListUsers(ctx context.Context, viewerID int64, limit, offset int) ([]UserView, int64, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		isSubscribed := false
		if viewerID != 0 && viewerID != users[i].ID {
			isSubscribed, err = s.subscriptions.Exists(ctx, viewerID, users[i].ID)
			if err != nil {
				return nil, 0, err
			}
		}
		views = append(views, NewUserView(&users[i], isSubscribed))
	}
	return views, total, nil
}
