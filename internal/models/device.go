package models

import "time"

// Device is the server-side stand-in for a browser's persisted key-value
// store: one row per device id, holding the guest nickname and the last-visit
// instant used for new-tanuki detection. A missing row degrades to
// empty/absent values.
type Device struct {
	ID          string     `gorm:"size:64;primaryKey" json:"id"`
	Nickname    string     `gorm:"size:255" json:"nickname"`
	LastVisitAt *time.Time `json:"last_visit_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
