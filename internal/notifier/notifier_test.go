package notifier

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(episode string, createdAt time.Time) models.Tanuki {
	return models.Tanuki{ID: uuid.New(), Episode: episode, CreatedAt: createdAt}
}

func TestDetect(t *testing.T) {
	visit := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	before := entryAt("before", visit.Add(-time.Hour))
	exact := entryAt("exact", visit)
	after := entryAt("after", visit.Add(time.Hour))
	later := entryAt("later", visit.Add(2*time.Hour))

	got := Detect([]models.Tanuki{before, later, exact, after}, &visit)

	require.Len(t, got, 2)
	assert.Equal(t, "later", got[0].Episode, "newest first")
	assert.Equal(t, "after", got[1].Episode)
}

func TestDetectExactTimestampNotNew(t *testing.T) {
	visit := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	got := Detect([]models.Tanuki{entryAt("exact", visit)}, &visit)
	assert.Empty(t, got, "strictly-after comparison excludes the boundary")
}

func TestDetectFirstVisit(t *testing.T) {
	entries := []models.Tanuki{
		entryAt("a", time.Now()),
		entryAt("b", time.Now().Add(-time.Hour)),
	}
	got := Detect(entries, nil)
	assert.NotNil(t, got, "empty batches must serialize as [], not null")
	assert.Empty(t, got,
		"a first-ever visit reports nothing rather than the whole catalog")
}

func TestDetectNeverReturnsNil(t *testing.T) {
	visit := time.Now()
	got := Detect(nil, &visit)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDetectNothingNew(t *testing.T) {
	visit := time.Now()
	got := Detect([]models.Tanuki{entryAt("old", visit.Add(-time.Minute))}, &visit)
	assert.Empty(t, got)
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(nil)

	_, ok := c.Current()
	assert.False(t, ok)
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Zero(t, c.Len())
}

func TestCursorWalk(t *testing.T) {
	items := []models.Tanuki{
		entryAt("first", time.Now()),
		entryAt("second", time.Now()),
	}
	c := NewCursor(items)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "first", cur.Episode)

	require.True(t, c.Next())
	cur, _ = c.Current()
	assert.Equal(t, "second", cur.Episode)

	assert.False(t, c.Next(), "clamped at the last entry")
	assert.Equal(t, 1, c.Pos())

	require.True(t, c.Prev())
	assert.False(t, c.Prev(), "clamped at the first entry")
	assert.Equal(t, 0, c.Pos())
}

func TestCursorSingleItem(t *testing.T) {
	c := NewCursor([]models.Tanuki{entryAt("only", time.Now())})

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "only", cur.Episode)
}
