package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/ranking"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingService owns the one-rating-per-identity sub-collection of each
// tanuki.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

func validateScore(score int) error {
	if score < 1 || score > 5 {
		return apperr.Validation("score", "score must be between 1 and 5")
	}
	return nil
}

// Submit writes or overwrites the actor's rating. The upsert on the
// (tanuki_id, user_id) unique index is what enforces the one-rating
// invariant: two concurrent submits by the same identity resolve
// last-write-wins on a single row, never as duplicates.
func (s *RatingService) Submit(tanukiID uuid.UUID, actor identity.Identity, score int, displayName string) error {
	if err := validateScore(score); err != nil {
		return err
	}
	if err := s.tanukiExists(tanukiID); err != nil {
		return err
	}

	rating := models.Rating{
		ID:       uuid.New(),
		TanukiID: tanukiID,
		UserID:   actor.ID,
		Score:    score,
	}
	if displayName != "" {
		rating.UserName = &displayName
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tanuki_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "user_name", "updated_at"}),
	}).Create(&rating).Error
}

// Amend changes only the score of an existing rating in place.
func (s *RatingService) Amend(tanukiID uuid.UUID, actor identity.Identity, score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	result := s.db.Model(&models.Rating{}).
		Where("tanuki_id = ? AND user_id = ?", tanukiID, actor.ID).
		Update("score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Aggregate computes (average, count) over the full rating sub-collection
// and pulls out the viewer's own prior score when present. Count 0 yields a
// zero aggregate that renders as "unrated", never as a 0.0 score.
func (s *RatingService) Aggregate(tanukiID uuid.UUID, viewer *identity.Identity) (ranking.Aggregate, *int, error) {
	var ratings []models.Rating
	if err := s.db.Where("tanuki_id = ?", tanukiID).Find(&ratings).Error; err != nil {
		return ranking.Aggregate{}, nil, err
	}

	if len(ratings) == 0 {
		return ranking.Aggregate{}, nil, nil
	}

	var total int
	var viewerScore *int
	for _, r := range ratings {
		total += r.Score
		if viewer != nil && r.UserID == viewer.ID {
			score := r.Score
			viewerScore = &score
		}
	}

	return ranking.Aggregate{
		Average: float64(total) / float64(len(ratings)),
		Count:   len(ratings),
	}, viewerScore, nil
}

// AggregateAll fetches every entry's aggregate concurrently. Each fetch is
// isolated: a failing entry falls back to the zero aggregate and the batch
// continues.
func (s *RatingService) AggregateAll(ctx context.Context, entries []models.Tanuki) map[uuid.UUID]ranking.Aggregate {
	aggs := make([]ranking.Aggregate, len(entries))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, entry := range entries {
		g.Go(func() error {
			agg, _, err := s.Aggregate(entry.ID, nil)
			if err != nil {
				// Fallback to unrated; never abort the batch.
				agg = ranking.Aggregate{}
			}
			aggs[i] = agg
			return nil
		})
	}
	g.Wait()

	out := make(map[uuid.UUID]ranking.Aggregate, len(entries))
	for i, entry := range entries {
		out[entry.ID] = aggs[i]
	}
	return out
}

func (s *RatingService) tanukiExists(id uuid.UUID) error {
	var count int64
	s.db.Model(&models.Tanuki{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
