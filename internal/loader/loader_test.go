package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/db"
	"festivalapi/internal/domain"
	"festivalapi/internal/pipeline"
	"festivalapi/internal/repository"
	"festivalapi/internal/repository/dao"
)

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()

	database, err := db.OpenSQLite(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(database))

	year := 1982
	lat, lon := 44.8378, -0.5792
	sharedAddress := "1 Rue Test, Bordeaux, 33000"

	rows := []pipeline.Row{
		{
			Name:           "Fête de la Musique",
			Region:         "Nouvelle-Aquitaine",
			Department:     "Gironde",
			Commune:        "Bordeaux",
			INSEECode:      "33063",
			CreationYear:   &year,
			Discipline:     "Musique",
			Subcategory:    "Rock",
			Period:         "juin",
			PeriodCategory: domain.PeriodSeason,
			Latitude:       &lat,
			Longitude:      &lon,
			FullAddress:    sharedAddress,
		},
		{
			Name:           "Nuits du Jazz",
			Region:         "Nouvelle-Aquitaine",
			Department:     "Gironde",
			Commune:        "Bordeaux",
			INSEECode:      "33063",
			Discipline:     "Musique",
			Subcategory:    "Jazz",
			Period:         "octobre",
			PeriodCategory: domain.PeriodAfterSeason,
			Latitude:       &lat,
			Longitude:      &lon,
			FullAddress:    sharedAddress,
		},
	}

	csvPath := filepath.Join(dir, "festivals.csv")
	require.NoError(t, pipeline.WriteCSV(csvPath, rows))

	festivalDAO := dao.NewFestivalDAO(database)
	repo := repository.NewFestivalRepository(festivalDAO)
	ctx := context.Background()

	count, err := New(repo).LoadCSV(ctx, csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	festivals, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, festivals, 2)

	// Both rows share one address row.
	addresses, err := festivalDAO.CountAddresses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, addresses)

	first := festivals[0]
	assert.Equal(t, "Fête de la Musique", first.Name)
	require.NotNil(t, first.CreationYear)
	assert.Equal(t, 1982, *first.CreationYear)
	assert.Equal(t, sharedAddress, first.Address.PostalAddress)
	assert.Equal(t, domain.PeriodSeason, first.Period.Category)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(database))

	repo := repository.NewFestivalRepository(dao.NewFestivalDAO(database))

	_, err = New(repo).LoadCSV(context.Background(), "does-not-exist.csv")
	assert.Error(t, err)
}
