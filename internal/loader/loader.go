// Package loader moves the cleaned CSV dataset into the relational
// schema, deduplicating reference rows by natural key.
package loader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"festivalapi/internal/domain"
	"festivalapi/internal/pipeline"
)

type FestivalRepository interface {
	CreateBatch(ctx context.Context, festivals []domain.Festival) error
}

type Loader struct {
	repo FestivalRepository
}

func New(repo FestivalRepository) *Loader {
	return &Loader{
		repo: repo,
	}
}

// LoadCSV reads the cleaned dataset and inserts every row in a single
// transaction: either the whole file lands or none of it does.
func (l *Loader) LoadCSV(ctx context.Context, path string) (int, error) {
	rows, err := pipeline.ReadCSV(path)
	if err != nil {
		return 0, fmt.Errorf("pipeline.ReadCSV -> %w", err)
	}

	festivals := make([]domain.Festival, 0, len(rows))
	for _, row := range rows {
		festivals = append(festivals, rowToFestival(row))
	}

	if err = l.repo.CreateBatch(ctx, festivals); err != nil {
		return 0, fmt.Errorf("l.repo.CreateBatch -> %w", err)
	}

	zap.L().Info("dataset loaded", zap.Int("festivals", len(festivals)))

	return len(festivals), nil
}

func rowToFestival(row pipeline.Row) domain.Festival {
	festival := domain.Festival{
		Name:         row.Name,
		CreationYear: row.CreationYear,
		Address: domain.Address{
			PostalAddress: row.FullAddress,
			INSEECode:     row.INSEECode,
			Region:        row.Region,
			Department:    row.Department,
			Commune:       row.Commune,
		},
		Category: domain.Category{
			Discipline:  row.Discipline,
			Subcategory: row.Subcategory,
		},
		Period: domain.Period{
			Label:    row.Period,
			Category: row.PeriodCategory,
		},
	}

	if row.Latitude != nil {
		festival.Address.Latitude = *row.Latitude
	}
	if row.Longitude != nil {
		festival.Address.Longitude = *row.Longitude
	}

	return festival
}
