package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"festivalapi/internal/domain"
)

// referenceYear anchors the relative year formats ("12ème en 21",
// "17 ans"); the dataset snapshot dates from 2021.
const referenceYear = 2021

var (
	yearTokenRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearPrefixRe   = regexp.MustCompile(`\b(19|20)\d{2}`)
	editionInYYRe  = regexp.MustCompile(`(\d{1,2})\D*en\s(\d{2})`)
	editionRe      = regexp.MustCompile(`(\d{1,2})\D*ème`)
	ageRe          = regexp.MustCompile(`(\d{1,2})\s?ans`)
	slashYearsRe   = regexp.MustCompile(`(\d{4})\s?/\s?(\d{4})`)
	numberPrefixRe = regexp.MustCompile(`\d+\s*-\s*`)
)

var (
	beforeSeasonMonths = []string{"janvier", "février", "mars", "avril", "mai"}
	seasonMonths       = []string{"juin", "juillet", "août", "septembre"}
	afterSeasonMonths  = []string{"octobre", "novembre", "décembre"}
)

// ExtractYear pulls a creation year out of the dataset's free-text year
// field. Formats are tried in order and the first match wins:
//
//	"2021"          -> 2021
//	"2021a"         -> 2021
//	"12ème en 21"   -> 2009
//	"17ans"         -> 2004
//	"2021 / 2022"   -> 2021
//
// Returns nil when nothing matches or the input is empty.
func ExtractYear(s string) *int {
	if s == "" {
		return nil
	}

	if m := yearTokenRe.FindString(s); m != "" {
		return atoiPtr(m)
	}

	if m := yearPrefixRe.FindString(s); m != "" {
		return atoiPtr(m)
	}

	if m := editionInYYRe.FindStringSubmatch(s); m != nil {
		return relativeYearPtr(m[1])
	}

	if m := editionRe.FindStringSubmatch(s); m != nil {
		return relativeYearPtr(m[1])
	}

	if m := ageRe.FindStringSubmatch(s); m != nil {
		return relativeYearPtr(m[1])
	}

	if m := slashYearsRe.FindStringSubmatch(s); m != nil {
		return atoiPtr(m[1])
	}

	return nil
}

func atoiPtr(s string) *int {
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &year
}

func relativeYearPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	year := referenceYear - n

	return &year
}

// NormalizeSubcategory strips "123 - " numbering prefixes and collapses
// whitespace. An empty result becomes the "Inconnu" sentinel.
func NormalizeSubcategory(s string) string {
	s = numberPrefixRe.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")

	if s == "" {
		return "Inconnu"
	}

	return s
}

// CategorizePeriod buckets a free-text period into a season category.
// Season keywords take precedence over month names; matching is
// case-insensitive. Every non-empty input maps to exactly one of the
// four categories; empty input maps to the Unknown sentinel.
func CategorizePeriod(s string) domain.PeriodCategory {
	if s == "" {
		return domain.PeriodUnknown
	}

	s = strings.ToLower(s)

	switch {
	case strings.Contains(s, "avant-saison"):
		return domain.PeriodBeforeSeason
	case strings.Contains(s, "après-saison"):
		return domain.PeriodAfterSeason
	case strings.Contains(s, "saison"):
		return domain.PeriodSeason
	case containsAny(s, beforeSeasonMonths):
		return domain.PeriodBeforeSeason
	case containsAny(s, seasonMonths):
		return domain.PeriodSeason
	case containsAny(s, afterSeasonMonths):
		return domain.PeriodAfterSeason
	default:
		return domain.PeriodVariable
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}

	return false
}

// NormalizePeriod capitalizes each word, strips the season keywords and
// parentheses, and trims. Empty input passes through untouched.
func NormalizePeriod(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	s = strings.Join(words, " ")

	replacer := strings.NewReplacer(
		"Avant-saison", "",
		"Après-saison", "",
		"Saison", "",
		"(", "",
		")", "",
	)

	return strings.TrimSpace(replacer.Replace(s))
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
