package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"festivalapi/internal/domain"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "plain year", input: "2021", want: intPtr(2021)},
		{name: "year with trailing letter", input: "2021a", want: intPtr(2021)},
		{name: "edition relative to snapshot year", input: "12ème en 21", want: intPtr(2009)},
		{name: "age in years", input: "17ans", want: intPtr(2004)},
		{name: "age with space", input: "17 ans", want: intPtr(2004)},
		{name: "slash-separated years keeps first", input: "2021 / 2022", want: intPtr(2021)},
		{name: "no match", input: "tbd", want: nil},
		{name: "empty", input: "", want: nil},
		{name: "nineteenth century token", input: "1985", want: intPtr(1985)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractYear(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestNormalizeSubcategory(t *testing.T) {
	assert.Equal(t, "Rock", NormalizeSubcategory("123 - Rock "))
	assert.Equal(t, "Inconnu", NormalizeSubcategory("   "))
	assert.Equal(t, "Inconnu", NormalizeSubcategory(""))
	assert.Equal(t, "Jazz Blues", NormalizeSubcategory("1 - Jazz 2 - Blues"))
	assert.Equal(t, "Musique", NormalizeSubcategory("Musique"))
}

func TestCategorizePeriod(t *testing.T) {
	tests := []struct {
		input string
		want  domain.PeriodCategory
	}{
		{input: "avant-saison (mars)", want: domain.PeriodBeforeSeason},
		{input: "Avant-Saison", want: domain.PeriodBeforeSeason},
		{input: "janvier, février", want: domain.PeriodBeforeSeason},
		{input: "MAI", want: domain.PeriodBeforeSeason},
		{input: "saison", want: domain.PeriodSeason},
		{input: "juillet", want: domain.PeriodSeason},
		{input: "Septembre", want: domain.PeriodSeason},
		{input: "après-saison", want: domain.PeriodAfterSeason},
		{input: "octobre, novembre", want: domain.PeriodAfterSeason},
		{input: "Décembre", want: domain.PeriodAfterSeason},
		{input: "toute l'année", want: domain.PeriodVariable},
		{input: "", want: domain.PeriodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizePeriod(tt.input))
		})
	}
}

func TestNormalizePeriod(t *testing.T) {
	assert.Equal(t, "Juin Juillet", NormalizePeriod("juin juillet"))
	assert.Equal(t, "", NormalizePeriod("saison"))
	assert.Equal(t, "", NormalizePeriod(""))
	assert.Equal(t, "juin", NormalizePeriod("avant-saison (juin)"))
}

func intPtr(v int) *int {
	return &v
}
