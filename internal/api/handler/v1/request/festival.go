package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type FestivalRequest struct {
	Name           string  `json:"name"`
	CreationYear   *int    `json:"creation_year"`
	Website        string  `json:"website"`
	PostalAddress  string  `json:"postal_address"`
	INSEECode      string  `json:"insee_code"`
	Region         string  `json:"region"`
	Department     string  `json:"department"`
	Commune        string  `json:"commune"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Discipline     string  `json:"discipline"`
	Subcategory    string  `json:"subcategory"`
	Period         string  `json:"period"`
	PeriodCategory string  `json:"period_category"`
}

func (req *FestivalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.CreationYear, validation.Min(1000), validation.Max(2100)),
		validation.Field(&req.INSEECode, validation.Required, validation.Length(1, 10)),
		validation.Field(&req.Region, validation.Required),
		validation.Field(&req.Department, validation.Required),
		validation.Field(&req.Commune, validation.Required),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Discipline, validation.Required),
		validation.Field(&req.Subcategory, validation.Required),
		validation.Field(&req.Period, validation.Required),
		validation.Field(&req.PeriodCategory, validation.Required, validation.In(
			"Avant-saison", "Saison", "Après-saison", "Période Variable", "Inconnu")),
	)
}
