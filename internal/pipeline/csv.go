package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"festivalapi/internal/domain"
)

// CSVHeader is the exact column set of the cleaned dataset artifact.
var CSVHeader = []string{
	"Nom_Festival",
	"Region",
	"Departement",
	"Commune",
	"Code_INSEE",
	"Annee_Creation",
	"Discipline_Principale",
	"Sous_Categorie",
	"Periode",
	"Categorie_Periode",
	"Latitude",
	"Longitude",
	"Adresse_Complete",
}

func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create -> %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err = w.Write(CSVHeader); err != nil {
		return fmt.Errorf("w.Write header -> %w", err)
	}

	for _, row := range rows {
		if err = w.Write(rowToFields(row)); err != nil {
			return fmt.Errorf("w.Write row -> %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("r.Read header -> %w", err)
	}
	if len(header) != len(CSVHeader) {
		return nil, fmt.Errorf("unexpected header with %v columns", len(header))
	}

	var rows []Row
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("r.Read -> %w", err)
		}

		row, err := fieldsToRow(fields)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func rowToFields(row Row) []string {
	year := ""
	if row.CreationYear != nil {
		year = strconv.Itoa(*row.CreationYear)
	}

	return []string{
		row.Name,
		row.Region,
		row.Department,
		row.Commune,
		row.INSEECode,
		year,
		row.Discipline,
		row.Subcategory,
		row.Period,
		string(row.PeriodCategory),
		formatCoord(row.Latitude),
		formatCoord(row.Longitude),
		row.FullAddress,
	}
}

func fieldsToRow(fields []string) (Row, error) {
	row := Row{
		Name:           fields[0],
		Region:         fields[1],
		Department:     fields[2],
		Commune:        fields[3],
		INSEECode:      fields[4],
		Discipline:     fields[6],
		Subcategory:    fields[7],
		Period:         fields[8],
		PeriodCategory: domain.PeriodCategory(fields[9]),
		FullAddress:    fields[12],
	}

	if fields[5] != "" {
		year, err := strconv.Atoi(fields[5])
		if err != nil {
			return Row{}, fmt.Errorf("invalid year %q -> %w", fields[5], err)
		}
		row.CreationYear = &year
	}

	var err error
	if row.Latitude, err = parseCoord(fields[10]); err != nil {
		return Row{}, fmt.Errorf("invalid latitude %q -> %w", fields[10], err)
	}
	if row.Longitude, err = parseCoord(fields[11]); err != nil {
		return Row{}, fmt.Errorf("invalid longitude %q -> %w", fields[11], err)
	}

	return row, nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseCoord(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
