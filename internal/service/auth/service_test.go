package auth

import (
	"context"
	"testing"

	"github.com/strandtrack/attendance-backend-go/internal/domain/auth"
	"github.com/strandtrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]auth.User // keyed by id
}

func newFakeUserRepo(users ...auth.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]auth.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (auth.User, error) {
	u, ok := f.users[id]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func testUser(t *testing.T, password string) auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return auth.User{
		ID:           "u1",
		Email:        "registrar@school.edu",
		Name:         "Registrar",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
}

func newTestAuthService(t *testing.T, password string) auth.AuthService {
	t.Helper()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(newFakeUserRepo(testUser(t, password)), jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "registrar@school.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotZero(t, resp.AccessTokenExpiresAt)
	assert.Equal(t, "Registrar", resp.Name)
	assert.True(t, resp.IsAdmin)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "registrar@school.edu",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@school.edu",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_ValidatesRequest(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{})
	assert.Error(t, err)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "registrar@school.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The spent refresh token cannot be replayed.
	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestAuthService_Refresh_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	_, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Refresh(ctx, auth.RefreshRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "registrar@school.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, "password123")

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "registrar@school.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.LogoutRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}
