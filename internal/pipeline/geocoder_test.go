package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"address": {
				"road": "Rue de la République",
				"city": "Bordeaux",
				"county": "Gironde",
				"state": "Nouvelle-Aquitaine",
				"postcode": "33000"
			}
		}`))
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)

	got := g.ReverseGeocode(context.Background(), 44.8378, -0.5792)
	assert.Equal(t, "Rue de la République, Bordeaux, Gironde, Nouvelle-Aquitaine, 33000", got)
}

func TestReverseGeocode_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)

	assert.Equal(t, "", g.ReverseGeocode(context.Background(), 44.8378, -0.5792))
}

func TestReverseGeocode_MissingAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)

	assert.Equal(t, "", g.ReverseGeocode(context.Background(), 44.8378, -0.5792))
}

func TestReverseGeocode_InvalidCoordinates(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)

	assert.Equal(t, "", g.ReverseGeocode(context.Background(), 123.0, 0.0))
	assert.False(t, called, "out-of-range coordinates must not reach the API")
}
