package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]*User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*User{}}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if user, ok := f.users[email]; ok {
		copy := *user
		return &copy, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) List(ctx context.Context, role string) ([]User, error) {
	users := []User{}
	for _, user := range f.users {
		if role == "" || user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.Role = role
	return 1, nil
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	req := RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "secret123", Role: "donor"}
	require.NoError(t, service.Register(ctx, req))

	err := service.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)

	req := RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "secret123", Role: "donor"}
	require.NoError(t, service.Register(context.Background(), req))

	stored := store.users["rahim@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, CheckPasswordHash("secret123", stored.Password))
}

func TestLoginDoesNotDistinguishFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	req := RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "secret123", Role: "donor"}
	require.NoError(t, service.Register(ctx, req))

	_, wrongPassword := service.Login(ctx, Credential{Email: "rahim@example.com", Password: "wrong"})
	_, unknownEmail := service.Login(ctx, Credential{Email: "nobody@example.com", Password: "secret123"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	req := RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "secret123", Role: "donor"}
	require.NoError(t, service.Register(ctx, req))

	result, err := service.Login(ctx, Credential{Email: "rahim@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "donor", result.Role)
	assert.Equal(t, "Rahim", result.Name)

	email, err := ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", email)
}

func TestUpdateRole(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, RegisterRequest{Name: "Rahim", Email: "rahim@example.com", Password: "pw", Role: "donor"}))

	require.NoError(t, service.UpdateRole(ctx, "rahim@example.com", "admin"))
	assert.Equal(t, "admin", store.users["rahim@example.com"].Role)

	err := service.UpdateRole(ctx, "nobody@example.com", "admin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersByRole(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, RegisterRequest{Name: "A", Email: "a@example.com", Password: "pw", Role: "donor"}))
	require.NoError(t, service.Register(ctx, RegisterRequest{Name: "B", Email: "b@example.com", Password: "pw", Role: "volunteer"}))

	donors, err := service.ListUsers(ctx, "donor")
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, "a@example.com", donors[0].Email)

	all, err := service.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
