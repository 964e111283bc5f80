// Package notifier detects tanukis posted since a device's previous visit
// and drives a sequential browse-through of them. It is a pure read-side
// derivation with no write authority over entries.
package notifier

import (
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
)

// Detect selects entries created strictly after lastVisit, newest first.
// A nil lastVisit means a first-ever visit: nothing is reported as new, so a
// first-time viewer is not shown the whole catalog. The result is never nil,
// so an empty batch serializes as an empty JSON array.
func Detect(entries []models.Tanuki, lastVisit *time.Time) []models.Tanuki {
	fresh := make([]models.Tanuki, 0)
	if lastVisit == nil {
		return fresh
	}

	for _, e := range entries {
		if e.CreatedAt.After(*lastVisit) {
			fresh = append(fresh, e)
		}
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.After(fresh[j].CreatedAt)
	})
	return fresh
}

// Cursor walks a finite ordered batch of new entries. Next and Prev clamp at
// the boundaries; there is no wraparound.
type Cursor struct {
	items []models.Tanuki
	pos   int
}

func NewCursor(items []models.Tanuki) *Cursor {
	return &Cursor{items: items}
}

// Current returns the entry under the cursor, or false when the batch is
// empty.
func (c *Cursor) Current() (models.Tanuki, bool) {
	if len(c.items) == 0 {
		return models.Tanuki{}, false
	}
	return c.items[c.pos], true
}

// Next advances the cursor and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.pos >= len(c.items)-1 {
		return false
	}
	c.pos++
	return true
}

// Prev moves the cursor back and reports whether it moved.
func (c *Cursor) Prev() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) Len() int { return len(c.items) }
