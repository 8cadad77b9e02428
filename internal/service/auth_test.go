package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/config"
	"festivalapi/internal/db"
	"festivalapi/internal/domain"
	"festivalapi/internal/pkg/jwthelper"
	"festivalapi/internal/repository"
	"festivalapi/internal/repository/dao"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(database))

	conf := &config.APIConfig{
		JWTSigningKey: "test-signing-key",
		JWTAlgorithm:  "HS256",
	}

	return NewAuthService(conf, repository.NewUserRepository(dao.NewUserDAO(database)))
}

func testSignupUser() domain.User {
	return domain.User{
		Username: "johndoe",
		Email:    "john@example.org",
		FullName: "John Doe",
	}
}

func TestAuthService_Signup(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	created, err := s.Signup(ctx, testSignupUser(), "Secret123")
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "Secret123", created.HashedPassword)
	assert.True(t, strings.HasPrefix(created.HashedPassword, "$2a$"))
}

func TestAuthService_Signup_Duplicates(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, testSignupUser(), "Secret123")
	require.NoError(t, err)

	sameUsername := testSignupUser()
	sameUsername.Email = "other@example.org"
	_, err = s.Signup(ctx, sameUsername, "Secret123")
	assert.ErrorIs(t, err, ErrUsernameExists)

	sameEmail := testSignupUser()
	sameEmail.Username = "otheruser"
	_, err = s.Signup(ctx, sameEmail, "Secret123")
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, testSignupUser(), "Secret123")
	require.NoError(t, err)

	user, err := s.Login(ctx, "johndoe", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)

	_, err = s.Login(ctx, "johndoe", "WrongPass1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = s.Login(ctx, "nobody", "Secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_IssueToken(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, testSignupUser(), "Secret123")
	require.NoError(t, err)

	token, err := s.IssueToken(ctx, user, "curl/8.0")
	require.NoError(t, err)

	claims, err := jwthelper.ParseToken([]byte("test-signing-key"), "HS256", token)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", claims.Subject)
	assert.Equal(t, "curl/8.0", claims.UserAgent)
}
