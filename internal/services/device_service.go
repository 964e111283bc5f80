package services

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceService is the server-side device-scoped key-value store: guest
// nicknames and last-visit instants. A missing device row degrades to
// empty/absent values throughout.
type DeviceService struct {
	db *gorm.DB
}

func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// Nickname returns the device's persisted nickname, or "" when none is set.
func (s *DeviceService) Nickname(deviceID string) string {
	var device models.Device
	if err := s.db.First(&device, "id = ?", deviceID).Error; err != nil {
		return ""
	}
	return device.Nickname
}

func (s *DeviceService) SetNickname(deviceID, nickname string) error {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return apperr.Validation("nickname", "nickname is required")
	}

	device := models.Device{ID: deviceID, Nickname: nickname}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nickname", "updated_at"}),
	}).Create(&device).Error
}

// TouchLastVisit returns the previous last-visit instant and immediately
// overwrites it with now, so a second read within the same session does not
// re-detect the same batch. A first-ever visit returns nil.
func (s *DeviceService) TouchLastVisit(deviceID string, now time.Time) (*time.Time, error) {
	var device models.Device
	if err := s.db.First(&device, "id = ?", deviceID).Error; err != nil {
		device = models.Device{ID: deviceID, LastVisitAt: &now}
		if err := s.db.Create(&device).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	previous := device.LastVisitAt
	if err := s.db.Model(&device).Update("last_visit_at", now).Error; err != nil {
		return nil, err
	}
	return previous, nil
}
