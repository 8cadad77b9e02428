package repository

import (
	"context"
	"fmt"

	"festivalapi/internal/domain"
	"festivalapi/internal/repository/dao"
)

var (
	ErrFestivalNotFound = dao.ErrFestivalNotFound
)

type FestivalDAO interface {
	Insert(ctx context.Context, festival dao.Festival) (dao.Festival, error)
	InsertBatch(ctx context.Context, festivals []dao.Festival) error
	FindByID(ctx context.Context, id uint) (dao.Festival, error)
	List(ctx context.Context, limit, offset int) ([]dao.Festival, error)
	Update(ctx context.Context, festival dao.Festival) (dao.Festival, error)
	Delete(ctx context.Context, id uint) error
}

type FestivalRepository struct {
	dao FestivalDAO
}

func NewFestivalRepository(dao FestivalDAO) *FestivalRepository {
	return &FestivalRepository{
		dao: dao,
	}
}

func (r *FestivalRepository) Create(ctx context.Context, festival domain.Festival) (domain.Festival, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(festival))
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FestivalRepository) CreateBatch(ctx context.Context, festivals []domain.Festival) error {
	daoFestivals := make([]dao.Festival, 0, len(festivals))
	for _, f := range festivals {
		daoFestivals = append(daoFestivals, r.domainToDAO(f))
	}

	if err := r.dao.InsertBatch(ctx, daoFestivals); err != nil {
		return fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) FindByID(ctx context.Context, id uint) (domain.Festival, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FestivalRepository) List(ctx context.Context, limit, offset int) ([]domain.Festival, error) {
	found, err := r.dao.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	festivals := make([]domain.Festival, 0, len(found))
	for _, f := range found {
		festivals = append(festivals, r.daoToDomain(f))
	}

	return festivals, nil
}

func (r *FestivalRepository) Update(ctx context.Context, festival domain.Festival) (domain.Festival, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(festival))
	if err != nil {
		return domain.Festival{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FestivalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FestivalRepository) domainToDAO(f domain.Festival) dao.Festival {
	return dao.Festival{
		ID:           f.ID,
		Name:         f.Name,
		CreationYear: f.CreationYear,
		Website:      f.Website,
		Address: dao.Address{
			PostalAddress: f.Address.PostalAddress,
			INSEECode:     f.Address.INSEECode,
			Region:        f.Address.Region,
			Department:    f.Address.Department,
			Commune:       f.Address.Commune,
			Longitude:     f.Address.Longitude,
			Latitude:      f.Address.Latitude,
		},
		Category: dao.Category{
			Discipline:  f.Category.Discipline,
			Subcategory: f.Category.Subcategory,
		},
		Period: dao.Period{
			Label:    f.Period.Label,
			Category: string(f.Period.Category),
		},
	}
}

func (r *FestivalRepository) daoToDomain(f dao.Festival) domain.Festival {
	return domain.Festival{
		ID:           f.ID,
		Name:         f.Name,
		CreationYear: f.CreationYear,
		Website:      f.Website,
		Address: domain.Address{
			ID:            f.Address.ID,
			PostalAddress: f.Address.PostalAddress,
			INSEECode:     f.Address.INSEECode,
			Region:        f.Address.Region,
			Department:    f.Address.Department,
			Commune:       f.Address.Commune,
			Longitude:     f.Address.Longitude,
			Latitude:      f.Address.Latitude,
		},
		Category: domain.Category{
			ID:          f.Category.ID,
			Discipline:  f.Category.Discipline,
			Subcategory: f.Category.Subcategory,
		},
		Period: domain.Period{
			ID:       f.Period.ID,
			Label:    f.Period.Label,
			Category: domain.PeriodCategory(f.Period.Category),
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
