package services

import (
	"strings"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCommentLength = 500

// CommentService is the append-only comment ledger per tanuki. Stored text
// is raw; display surfaces must escape it before rendering.
type CommentService struct {
	db       *gorm.DB
	resolver *identity.Resolver
}

func NewCommentService(db *gorm.DB, resolver *identity.Resolver) *CommentService {
	return &CommentService{db: db, resolver: resolver}
}

func validateCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperr.Validation("content", "comment is required")
	}
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return "", apperr.Validation("content", "comment must be 500 characters or less")
	}
	return trimmed, nil
}

// Post appends a comment. The display name must already be resolved by the
// caller; a guest without a persisted nickname is blocked here.
func (s *CommentService) Post(tanukiID uuid.UUID, actor identity.Identity, displayName, content string) (*models.Comment, error) {
	trimmed, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	if displayName != "" {
		actor.Name = displayName
	}
	if !actor.HasName() {
		return nil, apperr.Validation("nickname", "a nickname is required to comment")
	}
	if displayName == "" {
		displayName = actor.DisplayName()
	}

	var count int64
	s.db.Model(&models.Tanuki{}).Where("id = ?", tanukiID).Count(&count)
	if count == 0 {
		return nil, apperr.ErrNotFound
	}

	comment := &models.Comment{
		ID:       uuid.New(),
		TanukiID: tanukiID,
		UserID:   actor.ID,
		UserName: displayName,
		Content:  trimmed,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns the tanuki's comments newest first. Re-invocable any number
// of times; no cursor state is retained.
func (s *CommentService) List(tanukiID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("tanuki_id = ?", tanukiID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// Remove hard-deletes a comment. Only privileged identities may delete;
// authorship grants no delete rights, unlike the entry mutation rule.
func (s *CommentService) Remove(tanukiID, commentID uuid.UUID, actor identity.Identity) error {
	if !s.resolver.IsPrivileged(actor) {
		return apperr.Permission("admin rights required to delete comments")
	}

	result := s.db.Delete(&models.Comment{}, "id = ? AND tanuki_id = ?", commentID, tanukiID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
