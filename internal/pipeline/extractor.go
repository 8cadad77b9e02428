package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RawRecord is one untyped record of the remote festivals catalog,
// keyed by the dataset's original column names.
type RawRecord struct {
	Name              string    `json:"nom_du_festival"`
	Region            string    `json:"region_principale_de_deroulement"`
	Department        string    `json:"departement_principal_de_deroulement"`
	Commune           string    `json:"commune_principale_de_deroulement"`
	INSEECode         string    `json:"code_insee_commune"`
	Website           string    `json:"site_internet_du_festival"`
	CreationYear      string    `json:"annee_de_creation_du_festival"`
	Discipline        string    `json:"discipline_dominante"`
	SubPerformingArts string    `json:"sous_categorie_spectacle_vivant"`
	SubMusic          string    `json:"sous_categorie_musique"`
	SubMusicCNM       string    `json:"sous_categorie_musique_cnm"`
	SubCinema         string    `json:"sous_categorie_cinema_et_audiovisuel"`
	SubVisualArts     string    `json:"sous_categorie_arts_visuels_et_arts_numeriques"`
	SubBooks          string    `json:"sous_categorie_livre_et_litterature"`
	Period            string    `json:"periode_principale_de_deroulement_du_festival"`
	Geocode           *Geopoint `json:"geocodage_xy"`
}

type Geopoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Extractor fetches raw dataset exports from the remote catalog API.
type Extractor struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewExtractor(baseURL, apiKey string) *Extractor {
	return &Extractor{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// FetchDataset downloads the full JSON export of a dataset. Unlike
// geocoding, an extraction failure aborts the whole run: there is
// nothing to clean without the dataset.
func (e *Extractor) FetchDataset(ctx context.Context, datasetID string) ([]RawRecord, error) {
	reqURL := fmt.Sprintf("%v/api/v2/catalog/datasets/%v/exports/json", e.baseURL, datasetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("X-API-KEY", e.apiKey)

	zap.L().Info("fetching dataset", zap.String("dataset", datasetID))

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("e.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset request failed with status %v", resp.StatusCode)
	}

	var records []RawRecord
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("json.Decode -> %w", err)
	}

	zap.L().Info("dataset fetched", zap.Int("records", len(records)))

	return records, nil
}
