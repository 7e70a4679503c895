package user

import (
	"context"
	"fmt"
	"testing"

	"fleetbook/models"
	"fleetbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userStore struct {
	users map[string]*models.User
}

func (r *userStore) Create(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, utils.ErrNotFound)
}

func (r *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, utils.ErrNotFound)
}

func (r *userStore) Update(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func newTestService() (*DefaultUserService, *userStore) {
	store := &userStore{users: map[string]*models.User{}}
	return &DefaultUserService{Repo: store, JWTSecret: []byte("test-secret")}, store
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc, store := newTestService()

	resp, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)

	stored := store.users[resp.User.ID]
	require.NotNil(t, stored)
	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Imposter", Email: "alice@example.com", Password: "password2"})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// The issued token round-trips through the parser.
	sub, role, err := utils.ParseToken([]byte("test-secret"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sub)
	assert.Equal(t, models.RoleCustomer, role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestAuthenticateUnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	// Same message as a wrong password; no account enumeration.
	assert.Equal(t, "invalid email or password", ve.Message)
}
