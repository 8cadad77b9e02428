package domain

// PeriodCategory is the season bucket derived from a festival's free-text
// period. Values keep the dataset's French labels.
type PeriodCategory string

const (
	PeriodBeforeSeason PeriodCategory = "Avant-saison"
	PeriodSeason       PeriodCategory = "Saison"
	PeriodAfterSeason  PeriodCategory = "Après-saison"
	PeriodVariable     PeriodCategory = "Période Variable"

	// PeriodUnknown is the sentinel for records with no period at all.
	// It is never produced for a non-empty input.
	PeriodUnknown PeriodCategory = "Inconnu"
)
