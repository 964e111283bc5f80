// Package places wraps the place-search collaborator used for optional
// place linkage on an entry. A linked place is never required for validity.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Place is one (id, name) search result.
type Place struct {
	ID   string `json:"place_id"`
	Name string `json:"name"`
}

// Search finds candidate places by free text, optionally biased to a point.
type Search interface {
	Search(ctx context.Context, query string, lat, lng float64) ([]Place, error)
}

// GoogleClient talks to the Google Places text-search REST API.
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

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID string `json:"place_id"`
		Name    string `json:"name"`
	} `json:"results"`
}

func (g *GoogleClient) Search(ctx context.Context, query string, lat, lng float64) ([]Place, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", g.apiKey)
	q.Set("language", "ja")
	if lat != 0 || lng != 0 {
		q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search failed with status %d", resp.StatusCode)
	}

	var body placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("place search returned status %q", body.Status)
	}

	results := make([]Place, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, Place{ID: r.PlaceID, Name: r.Name})
	}
	return results, nil
}
