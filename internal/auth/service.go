package auth

import (
	"context"
	"errors"
)

var (
	ErrEmailTaken = errors.New("User already exists")
	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password so the response does not reveal which one failed.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

// UserStore is the persistence surface the service needs; *UserRepository
// implements it against MongoDB.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, role string) ([]User, error)
	UpdateRole(ctx context.Context, email, role string) (int64, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(ctx context.Context, req RegisterRequest) error {
	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.store.Create(ctx, &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	})
}

func (s *UserService) Login(ctx context.Context, cred Credential) (*LoginResult, error) {
	user, err := s.store.FindByEmail(ctx, cred.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPasswordHash(cred.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.Email, TokenTTL())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Email: user.Email, Role: user.Role, Name: user.Name}, nil
}

func (s *UserService) ListUsers(ctx context.Context, role string) ([]User, error) {
	return s.store.List(ctx, role)
}

func (s *UserService) UpdateRole(ctx context.Context, email, role string) error {
	matched, err := s.store.UpdateRole(ctx, email, role)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, email string) (*User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
