package service

import (
	"context"
	"fmt"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

var (
	ErrFestivalNotFound = repository.ErrFestivalNotFound
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type FestivalRepository interface {
	Create(ctx context.Context, festival domain.Festival) (domain.Festival, error)
	FindByID(ctx context.Context, id uint) (domain.Festival, error)
	List(ctx context.Context, limit, offset int) ([]domain.Festival, error)
	Update(ctx context.Context, festival domain.Festival) (domain.Festival, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalService struct {
	repo FestivalRepository
}

func NewFestivalService(repo FestivalRepository) *FestivalService {
	return &FestivalService{
		repo: repo,
	}
}

func (s *FestivalService) CreateFestival(ctx context.Context, festival domain.Festival) (domain.Festival, error) {
	created, err := s.repo.Create(ctx, festival)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FestivalService) GetFestival(ctx context.Context, id uint) (domain.Festival, error) {
	festival, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return festival, nil
}

// ListFestivals pages through festivals. Limit is clamped to MaxPageSize;
// zero or negative values fall back to DefaultPageSize.
func (s *FestivalService) ListFestivals(ctx context.Context, limit, offset int) ([]domain.Festival, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	festivals, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return festivals, nil
}

func (s *FestivalService) UpdateFestival(ctx context.Context, festival domain.Festival) (domain.Festival, error) {
	updated, err := s.repo.Update(ctx, festival)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FestivalService) DeleteFestival(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
