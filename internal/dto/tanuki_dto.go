package dto

import (
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/ranking"
)

// CreateTanukiRequest carries the new-entry form. Sent as multipart form
// data so the photo and thumbnail renditions can ride along.
type CreateTanukiRequest struct {
	Episode         string  `json:"episode" form:"episode" validate:"required"`
	Characteristics string  `json:"characteristics" form:"characteristics"`
	NoteURL         string  `json:"note_url" form:"note_url" validate:"omitempty,url"`
	DiscoveryDate   string  `json:"discovery_date" form:"discovery_date" validate:"omitempty,datetime=2006-01-02"`
	Latitude        float64 `json:"latitude" form:"latitude" validate:"required,latitude"`
	Longitude       float64 `json:"longitude" form:"longitude" validate:"required,longitude"`
	UserName        string  `json:"user_name" form:"user_name" validate:"max=255"`
	IsShop          bool    `json:"is_shop" form:"is_shop"`
	PlaceID         string  `json:"place_id" form:"place_id" validate:"max=255"`
	PlaceName       string  `json:"place_name" form:"place_name" validate:"max=255"`
	InitialRating   int     `json:"initial_rating" form:"initial_rating" validate:"omitempty,min=1,max=5"`
}

// UpdateTanukiRequest is a partial patch; nil fields are left untouched.
type UpdateTanukiRequest struct {
	Episode         *string  `json:"episode" form:"episode"`
	Characteristics *string  `json:"characteristics" form:"characteristics"`
	NoteURL         *string  `json:"note_url" form:"note_url"`
	DiscoveryDate   *string  `json:"discovery_date" form:"discovery_date" validate:"omitempty,datetime=2006-01-02"`
	Latitude        *float64 `json:"latitude" form:"latitude"`
	Longitude       *float64 `json:"longitude" form:"longitude"`
	UserName        *string  `json:"user_name" form:"user_name"`
	IsShop          *bool    `json:"is_shop" form:"is_shop"`
	PlaceID         *string  `json:"place_id" form:"place_id"`
	PlaceName       *string  `json:"place_name" form:"place_name"`
}

// TanukiListItem is one list-view row: the entry plus its rating aggregate
// and, for near-sorted queries, the distance from the query point.
type TanukiListItem struct {
	models.Tanuki
	Rating     ranking.Aggregate `json:"rating"`
	DistanceKm *float64          `json:"distance_km,omitempty"`
}

type SubmitRatingRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// RatingAggregateResponse renders an aggregate. Count 0 means unrated; the
// average is omitted rather than shown as 0.0.
type RatingAggregateResponse struct {
	Average     *float64 `json:"average,omitempty"`
	Count       int      `json:"count"`
	ViewerScore *int     `json:"viewer_score,omitempty"`
}

type PostCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type NicknameRequest struct {
	Nickname string `json:"nickname" validate:"required,max=255"`
}

// NewTanukisResponse is the detected new-entry batch for a device, newest
// first. The client walks it with a clamped cursor.
type NewTanukisResponse struct {
	Count   int             `json:"count"`
	Tanukis []models.Tanuki `json:"tanukis"`
}
