package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placesServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch(t *testing.T) {
	srv := placesServer(t, `{
		"status": "OK",
		"results": [
			{"place_id": "abc123", "name": "たぬき食堂"},
			{"place_id": "def456", "name": "たぬき神社"}
		]
	}`)

	client := NewGoogleClient(srv.URL, "test-key")
	got, err := client.Search(context.Background(), "たぬき", 35.0, 135.0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Place{ID: "abc123", Name: "たぬき食堂"}, got[0])
	assert.Equal(t, Place{ID: "def456", Name: "たぬき神社"}, got[1])
}

func TestSearchZeroResults(t *testing.T) {
	srv := placesServer(t, `{"status": "ZERO_RESULTS", "results": []}`)

	client := NewGoogleClient(srv.URL, "test-key")
	got, err := client.Search(context.Background(), "存在しない場所", 0, 0)
	require.NoError(t, err, "no matches is a valid empty answer")
	assert.Empty(t, got)
}

func TestSearchDeniedStatus(t *testing.T) {
	srv := placesServer(t, `{"status": "REQUEST_DENIED", "results": []}`)

	client := NewGoogleClient(srv.URL, "bad-key")
	_, err := client.Search(context.Background(), "たぬき", 0, 0)
	assert.Error(t, err)
}

func TestSearchLocationBias(t *testing.T) {
	var gotLocation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocation = r.URL.Query().Get("location")
		fmt.Fprint(w, `{"status": "OK", "results": []}`)
	}))
	t.Cleanup(srv.Close)

	client := NewGoogleClient(srv.URL, "test-key")
	_, err := client.Search(context.Background(), "たぬき", 35.6762, 139.6503)
	require.NoError(t, err)
	assert.NotEmpty(t, gotLocation)

	_, err = client.Search(context.Background(), "たぬき", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, gotLocation, "no bias sent when the viewer position is unknown")
}
