package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/domain"
)

type stubResolver struct {
	address string
	calls   int
}

func (s *stubResolver) ReverseGeocode(_ context.Context, _, _ float64) string {
	s.calls++
	return s.address
}

func TestCleanAll(t *testing.T) {
	resolver := &stubResolver{address: "1 Rue Test, Bordeaux, 33000"}
	cleaner := NewCleaner(resolver)

	records := []RawRecord{
		{
			Name:         "Festival du Test",
			Region:       "Nouvelle-Aquitaine",
			Department:   "Gironde",
			Commune:      "Bordeaux",
			INSEECode:    "33063",
			CreationYear: "12ème en 21",
			Discipline:   "Musique",
			SubMusic:     "1 - Rock",
			SubBooks:     "2 - Poésie",
			Period:       "avant-saison (mars)",
			Geocode:      &Geopoint{Lat: 44.8378, Lon: -0.5792},
		},
		{
			Name:       "Sans Position",
			Discipline: "Cinéma",
			Period:     "",
		},
	}

	rows := cleaner.CleanAll(context.Background(), records)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Festival du Test", first.Name)
	require.NotNil(t, first.CreationYear)
	assert.Equal(t, 2009, *first.CreationYear)
	assert.Equal(t, "Rock Poésie", first.Subcategory)
	assert.Equal(t, domain.PeriodBeforeSeason, first.PeriodCategory)
	assert.Equal(t, "mars", first.Period)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 44.8378, *first.Latitude, 1e-9)
	assert.Equal(t, "1 Rue Test, Bordeaux, 33000", first.FullAddress)

	second := rows[1]
	assert.Nil(t, second.CreationYear)
	assert.Equal(t, "Inconnu", second.Subcategory)
	assert.Equal(t, domain.PeriodUnknown, second.PeriodCategory)
	assert.Nil(t, second.Latitude)
	assert.Equal(t, "", second.FullAddress)

	assert.Equal(t, 1, resolver.calls, "records without coordinates must not be geocoded")
}

func TestWriteReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "festivals.csv")

	year := 1982
	lat, lon := 44.8378, -0.5792
	rows := []Row{
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
			FullAddress:    "Rue de la République, Bordeaux, 33000",
		},
		{
			Name:           "Inconnu Partout",
			Subcategory:    "Inconnu",
			PeriodCategory: domain.PeriodUnknown,
		},
	}

	require.NoError(t, WriteCSV(path, rows))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadCSV_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nom_Festival,Region\n"), 0o644))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}
