package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"festivalapi/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, InitTables(database))

	return database
}

func testFestival(name string) Festival {
	year := 1982

	return Festival{
		Name:         name,
		CreationYear: &year,
		Address: Address{
			PostalAddress: "1 Rue Test, Bordeaux, 33000",
			INSEECode:     "33063",
			Region:        "Nouvelle-Aquitaine",
			Department:    "Gironde",
			Commune:       "Bordeaux",
			Latitude:      44.8378,
			Longitude:     -0.5792,
		},
		Category: Category{
			Discipline:  "Musique",
			Subcategory: "Rock",
		},
		Period: Period{
			Label:    "juin",
			Category: "Saison",
		},
	}
}

func TestFestivalDAO_InsertAndFind(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, testFestival("Fête de la Musique"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fête de la Musique", found.Name)
	assert.Equal(t, "33063", found.Address.INSEECode)
	assert.Equal(t, "Rock", found.Category.Subcategory)
	assert.Equal(t, "juin", found.Period.Label)
}

func TestFestivalDAO_FindByID_NotFound(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))

	_, err := d.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrFestivalNotFound)
}

func TestFestivalDAO_ReferenceRowsDeduplicated(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	first, err := d.Insert(ctx, testFestival("Premier"))
	require.NoError(t, err)
	second, err := d.Insert(ctx, testFestival("Second"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.AddressID, second.AddressID)
	assert.Equal(t, first.CategoryID, second.CategoryID)
	assert.Equal(t, first.PeriodID, second.PeriodID)

	count, err := d.CountAddresses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestFestivalDAO_InsertBatch(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	batch := []Festival{testFestival("Un"), testFestival("Deux"), testFestival("Trois")}
	require.NoError(t, d.InsertBatch(ctx, batch))

	festivals, err := d.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, festivals, 3)

	count, err := d.CountAddresses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestFestivalDAO_List_Pagination(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := d.Insert(ctx, testFestival(name))
		require.NoError(t, err)
	}

	page, err := d.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "A", page[0].Name)
	assert.Equal(t, "B", page[1].Name)

	page, err = d.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "C", page[0].Name)

	page, err = d.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestFestivalDAO_Update(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, testFestival("Avant"))
	require.NoError(t, err)

	updated := testFestival("Après")
	updated.ID = created.ID
	updated.Website = "https://apres.example.org"
	updated.Period.Label = "septembre"
	updated.Period.Category = "Après-saison"

	got, err := d.Update(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, "Après", got.Name)
	assert.Equal(t, "https://apres.example.org", got.Website)
	assert.Equal(t, "septembre", got.Period.Label)
	assert.NotEqual(t, created.PeriodID, got.PeriodID)
	assert.Equal(t, created.AddressID, got.AddressID)
}

func TestFestivalDAO_Update_NotFound(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))

	missing := testFestival("Fantôme")
	missing.ID = 9999

	_, err := d.Update(context.Background(), missing)
	assert.ErrorIs(t, err, ErrFestivalNotFound)
}

func TestFestivalDAO_Delete(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, testFestival("Éphémère"))
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrFestivalNotFound)

	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrFestivalNotFound)
}
