package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"festivalapi/internal/config"
	"festivalapi/internal/domain"
	"festivalapi/internal/pkg/jwthelper"
	"festivalapi/internal/repository"
)

var (
	ErrUsernameExists  = repository.ErrUsernameExists
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	CreateToken(ctx context.Context, token domain.Token) (domain.Token, error)
}

type AuthService struct {
	conf *config.APIConfig
	repo AuthUserRepository
}

func NewAuthService(conf *config.APIConfig, repo AuthUserRepository) *AuthService {
	return &AuthService{
		conf: conf,
		repo: repo,
	}
}

// Signup stores a new user with a bcrypt hash of the password. The
// plaintext is never persisted.
func (s *AuthService) Signup(ctx context.Context, user domain.User, password string) (domain.User, error) {
	if err := s.checkUsernameExists(ctx, user.Username); err != nil {
		return domain.User{}, err
	}
	if err := s.checkEmailExists(ctx, user.Email); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.HashedPassword = string(hash)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login verifies the password for the given username. A missing user and
// a wrong password are distinct errors internally; callers must map both
// to the same Unauthorized response.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// IssueToken signs an access token for the user and records it in the
// tokens table. The record is audit-only; validation stays stateless.
func (s *AuthService) IssueToken(ctx context.Context, user domain.User, userAgent string) (string, error) {
	token, jti, err := jwthelper.GenerateToken(
		[]byte(s.conf.JWTSigningKey), s.conf.JWTAlgorithm, user.Username, userAgent)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	_, err = s.repo.CreateToken(ctx, domain.Token{
		JTI:         jti,
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
	})
	if err != nil {
		return "", fmt.Errorf("s.repo.CreateToken -> %w", err)
	}

	return token, nil
}

func (s *AuthService) checkUsernameExists(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}
