// Package ranking orders active-entry snapshots for the list view. All
// functions are pure: identical inputs yield identical output sequences.
package ranking

import (
	"math"
	"sort"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/google/uuid"
)

// Mode selects the list ordering.
type Mode string

const (
	ModeRecency    Mode = "recency"
	ModePrefecture Mode = "prefecture"
	ModeRating     Mode = "rating"
)

// Aggregate is the computed (average, count) pair for one entry's ratings.
// Count 0 means unrated; Average is then 0 for comparison only and must
// never be displayed as a score.
type Aggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Rank returns a new slice ordered by the given mode. Sorts are stable, so
// ties keep their original relative order.
func Rank(entries []models.Tanuki, aggs map[uuid.UUID]Aggregate, mode Mode) []models.Tanuki {
	out := make([]models.Tanuki, len(entries))
	copy(out, entries)

	switch mode {
	case ModePrefecture:
		sort.SliceStable(out, func(i, j int) bool {
			return RegionRank(out[i].Prefecture) < RegionRank(out[j].Prefecture)
		})
	case ModeRating:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := aggs[out[i].ID], aggs[out[j].ID]
			if a.Average != b.Average {
				return a.Average > b.Average
			}
			// More-rated entries outrank equally-scored but less-rated ones.
			return a.Count > b.Count
		})
	default: // ModeRecency
		sort.SliceStable(out, func(i, j int) bool {
			// Zero timestamps compare as the oldest possible instant.
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

// Nearest orders entries ascending by great-circle distance from the given
// point.
func Nearest(entries []models.Tanuki, lat, lng float64) []models.Tanuki {
	out := make([]models.Tanuki, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(lat, lng, out[i].Latitude, out[i].Longitude) <
			Distance(lat, lng, out[j].Latitude, out[j].Longitude)
	})
	return out
}

const earthRadiusKm = 6371

// Distance computes the haversine great-circle distance in kilometers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
