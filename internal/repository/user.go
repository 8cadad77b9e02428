package repository

import (
	"context"
	"fmt"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository/dao"
)

var (
	ErrUsernameExists  = dao.ErrUsernameExists
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	InsertToken(ctx context.Context, token dao.Token) (dao.Token, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		HashedPassword: user.HashedPassword,
		Disabled:       user.Disabled,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) CreateToken(ctx context.Context, token domain.Token) (domain.Token, error) {
	created, err := r.dao.InsertToken(ctx, dao.Token{
		JTI:         token.JTI,
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		UserID:      token.UserID,
	})
	if err != nil {
		return domain.Token{}, fmt.Errorf("r.dao.InsertToken -> %w", err)
	}

	return domain.Token{
		ID:          created.ID,
		JTI:         created.JTI,
		AccessToken: created.AccessToken,
		TokenType:   created.TokenType,
		UserID:      created.UserID,
		CreatedAt:   created.CreatedAt,
	}, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		HashedPassword: u.HashedPassword,
		Disabled:       u.Disabled,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
