package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/catalog/datasets/festivals-test/exports/json", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-API-KEY"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"nom_du_festival": "Fête de la Musique",
				"region_principale_de_deroulement": "Nouvelle-Aquitaine",
				"code_insee_commune": "33063",
				"annee_de_creation_du_festival": "1982",
				"discipline_dominante": "Musique",
				"geocodage_xy": {"lat": 44.8378, "lon": -0.5792}
			},
			{
				"nom_du_festival": "Sans Coordonnées",
				"geocodage_xy": null
			}
		]`))
	}))
	defer server.Close()

	e := NewExtractor(server.URL, "secret-key")

	records, err := e.FetchDataset(context.Background(), "festivals-test")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Fête de la Musique", records[0].Name)
	assert.Equal(t, "33063", records[0].INSEECode)
	require.NotNil(t, records[0].Geocode)
	assert.InDelta(t, 44.8378, records[0].Geocode.Lat, 1e-9)

	assert.Nil(t, records[1].Geocode)
}

func TestFetchDataset_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	e := NewExtractor(server.URL, "bad-key")

	_, err := e.FetchDataset(context.Background(), "festivals-test")
	assert.Error(t, err)
}
