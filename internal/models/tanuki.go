package models

import (
	"time"

	"github.com/google/uuid"
)

// Tanuki lifecycle status values. A tanuki only ever moves active -> deleted;
// deleted records stay retrievable by direct id but are excluded from listings.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Tanuki is one catalog record: a discovered tanuki statue pinned to the map.
type Tanuki struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Episode         string     `gorm:"type:text;not null" json:"episode"`
	Characteristics string     `gorm:"type:text" json:"characteristics"`
	NoteURL         *string    `gorm:"size:500" json:"note_url"`
	DiscoveryDate   *time.Time `json:"discovery_date"`
	Latitude        float64    `gorm:"not null" json:"latitude"`
	Longitude       float64    `gorm:"not null" json:"longitude"`

	// Photo references are attached after the row exists (the storage key is
	// derived from the generated id). A nil PhotoURL on an entry that was
	// submitted with a photo means assets are still pending.
	PhotoURL          *string `gorm:"size:500" json:"photo_url"`
	PhotoThumbnailURL *string `gorm:"size:500" json:"photo_thumbnail_url"`

	// Prefecture is best-effort reverse-geocoding enrichment; absent when the
	// lookup failed at creation time.
	Prefecture string `gorm:"size:100;index" json:"prefecture"`

	PlaceID   *string `gorm:"size:255" json:"place_id"`
	PlaceName *string `gorm:"size:255" json:"place_name"`
	IsShop    bool    `gorm:"default:false" json:"is_shop"`

	Status string `gorm:"size:20;not null;default:'active';index" json:"status"`

	// UserID is immutable after creation. UserName is the creator's display
	// name snapshot; only the creator may change it.
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName  string    `gorm:"size:255;not null" json:"user_name"`
	UserEmail string    `gorm:"size:255" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rating is one (tanuki, identity) score. The composite unique index is what
// enforces one rating per identity without a read-before-write check.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TanukiID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_tanuki_user" json:"tanuki_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_tanuki_user" json:"user_id"`
	Score     int       `gorm:"not null" json:"score"`
	UserName  *string   `gorm:"size:255" json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is one timestamped note on a tanuki. Immutable once created;
// deletion is privileged-only regardless of authorship.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TanukiID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tanuki_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	UserName  string    `gorm:"size:255;not null" json:"user_name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
