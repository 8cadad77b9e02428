package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"festivalapi/internal/domain"
)

// Row is one line of the cleaned dataset, in CSV column order.
type Row struct {
	Name           string
	Region         string
	Department     string
	Commune        string
	INSEECode      string
	CreationYear   *int
	Discipline     string
	Subcategory    string
	Period         string
	PeriodCategory domain.PeriodCategory
	Latitude       *float64
	Longitude      *float64
	FullAddress    string
}

// AddressResolver turns coordinates into a postal address. Satisfied by
// *Geocoder; tests substitute a stub.
type AddressResolver interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}

// Cleaner normalizes raw catalog records into cleaned rows.
type Cleaner struct {
	geocoder AddressResolver
}

func NewCleaner(geocoder AddressResolver) *Cleaner {
	return &Cleaner{
		geocoder: geocoder,
	}
}

// CleanAll produces exactly one row per input record. Geocoding
// failures degrade to an empty address instead of aborting the run.
func (c *Cleaner) CleanAll(ctx context.Context, records []RawRecord) []Row {
	zap.L().Info("cleaning records", zap.Int("count", len(records)))

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, c.cleanOne(ctx, record))
	}

	zap.L().Info("cleaning done", zap.Int("rows", len(rows)))

	return rows
}

func (c *Cleaner) cleanOne(ctx context.Context, r RawRecord) Row {
	row := Row{
		Name:       r.Name,
		Region:     r.Region,
		Department: r.Department,
		Commune:    r.Commune,
		INSEECode:  r.INSEECode,
		Discipline: r.Discipline,
	}

	row.CreationYear = ExtractYear(r.CreationYear)

	// The raw catalog spreads sub-categories over six columns; they are
	// space-joined before normalization, absent ones included as empty.
	joined := strings.Join([]string{
		r.SubPerformingArts,
		r.SubMusic,
		r.SubMusicCNM,
		r.SubCinema,
		r.SubVisualArts,
		r.SubBooks,
	}, " ")
	row.Subcategory = NormalizeSubcategory(joined)

	row.PeriodCategory = CategorizePeriod(r.Period)
	row.Period = NormalizePeriod(r.Period)

	if r.Geocode != nil {
		lat, lon := r.Geocode.Lat, r.Geocode.Lon
		row.Latitude = &lat
		row.Longitude = &lon
		row.FullAddress = c.geocoder.ReverseGeocode(ctx, lat, lon)
	}

	return row
}
