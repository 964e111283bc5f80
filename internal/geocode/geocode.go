// Package geocode wraps the reverse-geocoding collaborator. Lookups are
// enrichment only; callers swallow failures and leave the prefecture absent.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Lookup resolves a coordinate to a region label, or "" when none applies.
type Lookup interface {
	Prefecture(ctx context.Context, lat, lng float64) (string, error)
}

// GoogleClient talks to the Google Geocoding REST API.
type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewGoogleClient(baseURL, apiKey string) *GoogleClient {
	return &GoogleClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

// Prefecture returns the administrative_area_level_1 component for the
// coordinate. Outside Japan the country name is returned instead, so foreign
// sightings still get a usable region label.
func (g *GoogleClient) Prefecture(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("key", g.apiKey)
	q.Set("language", "ja")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode request failed with status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return "", fmt.Errorf("geocode returned status %q", body.Status)
	}

	var country string
	for _, comp := range body.Results[0].AddressComponents {
		for _, t := range comp.Types {
			if t == "administrative_area_level_1" {
				return comp.LongName, nil
			}
			if t == "country" {
				country = comp.LongName
			}
		}
	}

	if country != "" && country != "日本" {
		return country, nil
	}
	return "", nil
}
