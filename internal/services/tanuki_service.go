package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/geocode"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TanukiService owns the entry lifecycle: creation, edits, soft delete and
// the full owner delete.
type TanukiService struct {
	db       *gorm.DB
	resolver *identity.Resolver
	geo      geocode.Lookup
	assets   storage.Store
}

func NewTanukiService(db *gorm.DB, resolver *identity.Resolver, geo geocode.Lookup, assets storage.Store) *TanukiService {
	return &TanukiService{db: db, resolver: resolver, geo: geo, assets: assets}
}

func validateEpisode(episode string) error {
	if strings.TrimSpace(episode) == "" {
		return apperr.Validation("episode", "episode is required")
	}
	return nil
}

func validatePosition(lat, lng float64) error {
	if lat == 0 && lng == 0 {
		return apperr.Validation("position", "position is required")
	}
	if math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return apperr.Validation("position", "position is out of range")
	}
	return nil
}

func parseDiscoveryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperr.Validation("discovery_date", "must be YYYY-MM-DD")
	}
	return &t, nil
}

// Create validates the draft, enriches it with a best-effort prefecture
// lookup, persists the document, and then attaches photo assets in a second
// phase (the storage key is derived from the generated id). A photo upload
// failure is reported as a creation failure even though the bare row now
// exists; the nil photo_url marks it as still materializing.
func (s *TanukiService) Create(ctx context.Context, req *dto.CreateTanukiRequest, photo, thumb []byte, actor identity.Identity) (*models.Tanuki, error) {
	if !actor.IsRegistered() {
		return nil, apperr.Permission("guests cannot post tanukis")
	}
	if err := validateEpisode(req.Episode); err != nil {
		return nil, err
	}
	if err := validatePosition(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	discoveryDate, err := parseDiscoveryDate(req.DiscoveryDate)
	if err != nil {
		return nil, err
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = actor.DisplayName()
	}

	tanuki := &models.Tanuki{
		ID:              uuid.New(),
		Episode:         strings.TrimSpace(req.Episode),
		Characteristics: strings.TrimSpace(req.Characteristics),
		DiscoveryDate:   discoveryDate,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		IsShop:          req.IsShop,
		Status:          models.StatusActive,
		UserID:          actor.ID,
		UserName:        userName,
		UserEmail:       actor.Email,
	}
	if req.NoteURL != "" {
		tanuki.NoteURL = &req.NoteURL
	}
	if req.PlaceID != "" {
		tanuki.PlaceID = &req.PlaceID
		tanuki.PlaceName = &req.PlaceName
	}

	// Enrichment must never block creation.
	geoCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if prefecture, err := s.geo.Prefecture(geoCtx, req.Latitude, req.Longitude); err != nil {
		slog.Warn("prefecture lookup failed", "error", err)
	} else {
		tanuki.Prefecture = prefecture
	}

	if err := s.db.Create(tanuki).Error; err != nil {
		return nil, fmt.Errorf("failed to create tanuki: %w", err)
	}

	if tanuki.DiscoveryDate == nil {
		created := tanuki.CreatedAt
		tanuki.DiscoveryDate = &created
		s.db.Model(tanuki).Update("discovery_date", created)
	}

	if len(photo) > 0 {
		if err := s.attachPhotos(ctx, tanuki, photo, thumb); err != nil {
			return nil, err
		}
	}

	if req.InitialRating > 0 {
		name := tanuki.UserName
		rating := models.Rating{
			ID:       uuid.New(),
			TanukiID: tanuki.ID,
			UserID:   actor.ID,
			Score:    req.InitialRating,
			UserName: &name,
		}
		if err := s.db.Create(&rating).Error; err != nil {
			slog.Warn("initial rating save failed", "tanuki_id", tanuki.ID, "error", err)
		}
	}

	return tanuki, nil
}

func (s *TanukiService) attachPhotos(ctx context.Context, tanuki *models.Tanuki, photo, thumb []byte) error {
	photoURL, err := s.assets.Put(ctx, fmt.Sprintf("tanukis/%s/photo.jpg", tanuki.ID), photo, "image/jpeg")
	if err != nil {
		return apperr.Collaborator("photo upload", err)
	}

	thumbURL := photoURL
	if len(thumb) > 0 {
		thumbURL, err = s.assets.Put(ctx, fmt.Sprintf("tanukis/%s/thumbnail.jpg", tanuki.ID), thumb, "image/jpeg")
		if err != nil {
			return apperr.Collaborator("thumbnail upload", err)
		}
	}

	tanuki.PhotoURL = &photoURL
	tanuki.PhotoThumbnailURL = &thumbURL
	return s.db.Model(tanuki).Updates(map[string]interface{}{
		"photo_url":           photoURL,
		"photo_thumbnail_url": thumbURL,
	}).Error
}

// Get returns the entry by direct id regardless of status, so a soft-deleted
// record is still retrievable even though listings exclude it.
func (s *TanukiService) Get(id uuid.UUID) (*models.Tanuki, error) {
	var tanuki models.Tanuki
	if err := s.db.First(&tanuki, "id = ?", id).Error; err != nil {
		return nil, apperr.ErrNotFound
	}
	return &tanuki, nil
}

// ListActive returns the active-entry snapshot that the ranking and notifier
// derivations work over.
func (s *TanukiService) ListActive() ([]models.Tanuki, error) {
	var tanukis []models.Tanuki
	err := s.db.Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Find(&tanukis).Error
	return tanukis, err
}

// Update applies a partial patch. A privileged non-creator can edit every
// field except the creator's display-name snapshot, which is silently
// dropped from the patch so an admin edit never impersonates renaming the
// original poster.
func (s *TanukiService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTanukiRequest, photo, thumb []byte, actor identity.Identity) (*models.Tanuki, error) {
	tanuki, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.resolver.CanMutate(tanuki.UserID, actor) {
		return nil, apperr.Permission("no edit rights for this tanuki")
	}

	updates := map[string]interface{}{}

	if req.Episode != nil {
		if err := validateEpisode(*req.Episode); err != nil {
			return nil, err
		}
		updates["episode"] = strings.TrimSpace(*req.Episode)
	}
	if req.Characteristics != nil {
		updates["characteristics"] = strings.TrimSpace(*req.Characteristics)
	}
	if req.NoteURL != nil {
		// Clearing the link stores NULL, never an empty string.
		if u := strings.TrimSpace(*req.NoteURL); u == "" {
			updates["note_url"] = nil
		} else {
			updates["note_url"] = u
		}
	}
	if req.Latitude != nil && req.Longitude != nil {
		if err := validatePosition(*req.Latitude, *req.Longitude); err != nil {
			return nil, err
		}
		updates["latitude"] = *req.Latitude
		updates["longitude"] = *req.Longitude
	}
	if req.DiscoveryDate != nil {
		d, err := parseDiscoveryDate(*req.DiscoveryDate)
		if err != nil {
			return nil, err
		}
		updates["discovery_date"] = d
	}
	if req.IsShop != nil {
		updates["is_shop"] = *req.IsShop
	}
	if req.PlaceID != nil {
		updates["place_id"] = *req.PlaceID
	}
	if req.PlaceName != nil {
		updates["place_name"] = *req.PlaceName
	}
	if req.UserName != nil && actor.ID == tanuki.UserID {
		if name := strings.TrimSpace(*req.UserName); name != "" {
			updates["user_name"] = name
		}
	}

	if len(photo) > 0 {
		if err := s.attachPhotos(ctx, tanuki, photo, thumb); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(tanuki).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update tanuki: %w", err)
		}
	}

	return s.Get(id)
}

// SoftDelete marks the entry deleted without touching its ratings or
// comments. Privileged identities only.
func (s *TanukiService) SoftDelete(id uuid.UUID, actor identity.Identity) error {
	if !s.resolver.IsPrivileged(actor) {
		return apperr.Permission("admin rights required")
	}

	result := s.db.Model(&models.Tanuki{}).
		Where("id = ?", id).
		Update("status", models.StatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// HardDelete removes the document after best-effort asset cleanup. Asset
// failures are logged, never propagated: record removal must proceed. The
// rating and comment rows are left behind and reclaimed by the nightly
// orphan sweep.
func (s *TanukiService) HardDelete(ctx context.Context, id uuid.UUID, actor identity.Identity) error {
	tanuki, err := s.Get(id)
	if err != nil {
		return err
	}
	if !s.resolver.CanMutate(tanuki.UserID, actor) {
		return apperr.Permission("no delete rights for this tanuki")
	}

	if tanuki.PhotoURL != nil {
		if err := s.assets.Delete(ctx, *tanuki.PhotoURL); err != nil {
			slog.Warn("photo cleanup failed", "tanuki_id", id, "error", err)
		}
	}
	if tanuki.PhotoThumbnailURL != nil {
		if err := s.assets.Delete(ctx, *tanuki.PhotoThumbnailURL); err != nil {
			slog.Warn("thumbnail cleanup failed", "tanuki_id", id, "error", err)
		}
	}

	return s.db.Delete(&models.Tanuki{}, "id = ?", id).Error
}
