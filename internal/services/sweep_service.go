package services

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"gorm.io/gorm"
)

// SweepService reclaims rating and comment rows orphaned by hard deletes,
// which intentionally do not cascade.
type SweepService struct {
	db *gorm.DB
}

func NewSweepService(db *gorm.DB) *SweepService {
	return &SweepService{db: db}
}

// SweepOrphans deletes ratings and comments whose parent tanuki no longer
// exists and returns how many rows were reclaimed.
func (s *SweepService) SweepOrphans() (int64, error) {
	ratings := s.db.Where("tanuki_id NOT IN (?)",
		s.db.Model(&models.Tanuki{}).Select("id"),
	).Delete(&models.Rating{})
	if ratings.Error != nil {
		return 0, ratings.Error
	}

	comments := s.db.Where("tanuki_id NOT IN (?)",
		s.db.Model(&models.Tanuki{}).Select("id"),
	).Delete(&models.Comment{})
	if comments.Error != nil {
		return ratings.RowsAffected, comments.Error
	}

	total := ratings.RowsAffected + comments.RowsAffected
	if total > 0 {
		slog.Info("orphan sweep completed", "ratings", ratings.RowsAffected, "comments", comments.RowsAffected)
	}
	return total, nil
}
