package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const geocoderUserAgent = "festivalapi-pipeline/1.0"

// Geocoder reverse-geocodes coordinates through Nominatim. The free API
// allows at most one request per second, enforced here with a token
// bucket rather than a fixed sleep.
type Geocoder struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type nominatimResponse struct {
	Address *nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	Road         string `json:"road"`
	Quarter      string `json:"quarter"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	State        string `json:"state"`
	Region       string `json:"region"`
	Postcode     string `json:"postcode"`
}

// ReverseGeocode composes a postal address from the fields Nominatim
// returns, skipping absent ones. Failures of any kind are logged and
// degrade to an empty string; a bad address never aborts a cleaning run.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	if !s2.LatLngFromDegrees(lat, lon).IsValid() {
		zap.L().Warn("invalid coordinates", zap.Float64("lat", lat), zap.Float64("lon", lon))
		return ""
	}

	if err := g.limiter.Wait(ctx); err != nil {
		zap.L().Warn("rate limiter wait aborted", zap.Error(err))
		return ""
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("format", "json")

	reqURL := fmt.Sprintf("%v/reverse?%v", g.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		zap.L().Warn("failed to build reverse geocoding request", zap.Error(err))
		return ""
	}
	req.Header.Set("User-Agent", geocoderUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		zap.L().Warn("reverse geocoding request failed", zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("reverse geocoding returned non-200", zap.Int("status", resp.StatusCode))
		return ""
	}

	var body nominatimResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		zap.L().Warn("failed to decode reverse geocoding response", zap.Error(err))
		return ""
	}

	if body.Address == nil {
		zap.L().Warn("reverse geocoding response has no address",
			zap.Float64("lat", lat), zap.Float64("lon", lon))
		return ""
	}

	return joinAddressFields(body.Address)
}

func joinAddressFields(a *nominatimAddress) string {
	fields := []string{
		a.Road,
		a.Quarter,
		a.City,
		a.Municipality,
		a.County,
		a.State,
		a.Region,
		a.Postcode,
	}

	present := fields[:0]
	for _, f := range fields {
		if f != "" {
			present = append(present, f)
		}
	}

	return strings.Join(present, ", ")
}
