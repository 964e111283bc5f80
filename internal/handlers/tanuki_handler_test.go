package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNearQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		lat   float64
		lng   float64
		ok    bool
	}{
		{name: "shibuya", query: "35.658,139.701", lat: 35.658, lng: 139.701, ok: true},
		{name: "spaces around the comma", query: " 35.658 , 139.701 ", lat: 35.658, lng: 139.701, ok: true},
		{name: "empty", query: "", ok: false},
		{name: "single token", query: "35.658", ok: false},
		{name: "three tokens", query: "35.658,139.701,10", ok: false},
		{name: "non-numeric", query: "here,there", ok: false},
		{name: "null island sentinel", query: "0,0", ok: false},
		{name: "latitude out of range", query: "91,139.701", ok: false},
		{name: "longitude out of range", query: "35.658,181", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := parseNearQuery(tt.query)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lat, lat)
				assert.Equal(t, tt.lng, lng)
			}
		})
	}
}
