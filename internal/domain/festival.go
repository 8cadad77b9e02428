package domain

import "time"

// Address is a geocoded postal address shared by festivals held at the
// same location. Natural key: (PostalAddress, INSEECode).
type Address struct {
	ID            uint    `json:"id"`
	PostalAddress string  `json:"postal_address"`
	INSEECode     string  `json:"insee_code"`
	Region        string  `json:"region"`
	Department    string  `json:"department"`
	Commune       string  `json:"commune"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
}

// Category pairs a dominant discipline with its normalized sub-category.
// Natural key: (Discipline, Subcategory).
type Category struct {
	ID          uint   `json:"id"`
	Discipline  string `json:"discipline"`
	Subcategory string `json:"subcategory"`
}

// Period is a normalized period label with its derived season category.
// Natural key: Label.
type Period struct {
	ID       uint           `json:"id"`
	Label    string         `json:"label"`
	Category PeriodCategory `json:"category"`
}

type Festival struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	CreationYear *int      `json:"creation_year"`
	Website      string    `json:"website"`
	Address      Address   `json:"address"`
	Category     Category  `json:"category"`
	Period       Period    `json:"period"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
