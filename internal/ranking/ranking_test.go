package ranking

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(episode, prefecture string, createdAt time.Time) models.Tanuki {
	return models.Tanuki{
		ID:         uuid.New(),
		Episode:    episode,
		Prefecture: prefecture,
		CreatedAt:  createdAt,
	}
}

func episodes(entries []models.Tanuki) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Episode
	}
	return out
}

func TestRegionRank(t *testing.T) {
	assert.Equal(t, 1, RegionRank("北海道"))
	assert.Equal(t, 13, RegionRank("東京都"))
	assert.Equal(t, 47, RegionRank("沖縄県"))
	assert.Equal(t, 98, RegionRank("アメリカ合衆国"), "foreign labels share the unrecognized rank")
	assert.Equal(t, 98, RegionRank("somewhere"))
	assert.Equal(t, 99, RegionRank(""), "missing labels sort last of all")
}

func TestRankRecency(t *testing.T) {
	now := time.Now()
	a := entry("a", "", now.Add(-2*time.Hour))
	b := entry("b", "", now)
	c := entry("c", "", now.Add(-1*time.Hour))
	zero := entry("z", "", time.Time{})

	got := Rank([]models.Tanuki{a, zero, b, c}, nil, ModeRecency)
	assert.Equal(t, []string{"b", "c", "a", "z"}, episodes(got),
		"newest first, zero timestamps last")
}

func TestRankPrefecture(t *testing.T) {
	now := time.Now()
	got := Rank([]models.Tanuki{
		entry("okinawa", "沖縄県", now),
		entry("blank", "", now),
		entry("hokkaido", "北海道", now),
		entry("foreign", "アメリカ合衆国", now),
		entry("tokyo", "東京都", now),
	}, nil, ModePrefecture)

	assert.Equal(t, []string{"hokkaido", "tokyo", "okinawa", "foreign", "blank"}, episodes(got))
}

func TestRankPrefectureStable(t *testing.T) {
	now := time.Now()
	first := entry("first", "東京都", now)
	second := entry("second", "東京都", now)

	got := Rank([]models.Tanuki{first, second}, nil, ModePrefecture)
	assert.Equal(t, []string{"first", "second"}, episodes(got),
		"ties keep input order")
}

func TestRankRating(t *testing.T) {
	now := time.Now()
	a := entry("a", "", now)
	b := entry("b", "", now)
	c := entry("c", "", now)
	d := entry("d", "", now)

	aggs := map[uuid.UUID]Aggregate{
		a.ID: {Average: 4.5, Count: 3},
		b.ID: {Average: 4.5, Count: 1},
		c.ID: {Average: 5.0, Count: 1},
		// d unrated: zero aggregate
	}

	got := Rank([]models.Tanuki{a, b, c, d}, aggs, ModeRating)
	assert.Equal(t, []string{"c", "a", "b", "d"}, episodes(got),
		"average descending, then count descending, unrated last")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	in := []models.Tanuki{
		entry("old", "", now.Add(-time.Hour)),
		entry("new", "", now),
	}
	_ = Rank(in, nil, ModeRecency)
	assert.Equal(t, "old", in[0].Episode, "input slice must stay untouched")
}

func TestRankIdempotent(t *testing.T) {
	now := time.Now()
	in := []models.Tanuki{
		entry("a", "大阪府", now),
		entry("b", "北海道", now.Add(-time.Minute)),
		entry("c", "", now.Add(-2*time.Minute)),
	}
	once := Rank(in, nil, ModePrefecture)
	twice := Rank(once, nil, ModePrefecture)
	assert.Equal(t, episodes(once), episodes(twice))
}

func TestNearest(t *testing.T) {
	tokyo := entry("tokyo", "東京都", time.Now())
	tokyo.Latitude, tokyo.Longitude = 35.6762, 139.6503
	osaka := entry("osaka", "大阪府", time.Now())
	osaka.Latitude, osaka.Longitude = 34.6937, 135.5023
	sapporo := entry("sapporo", "北海道", time.Now())
	sapporo.Latitude, sapporo.Longitude = 43.0618, 141.3545

	// Viewer standing in Yokohama.
	got := Nearest([]models.Tanuki{sapporo, osaka, tokyo}, 35.4437, 139.6380)
	assert.Equal(t, []string{"tokyo", "osaka", "sapporo"}, episodes(got))
}

func TestDistance(t *testing.T) {
	// Tokyo to Osaka is roughly 400 km.
	d := Distance(35.6762, 139.6503, 34.6937, 135.5023)
	require.InDelta(t, 400, d, 15)

	assert.Zero(t, Distance(35.0, 135.0, 35.0, 135.0))
}
