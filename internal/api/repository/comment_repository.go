package repository

import (
	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByReview(reviewID int64) ([]models.Comment, error)
	GetByPost(postID int64) ([]models.Comment, error)
	CountByReview(reviewID int64) (int64, error)
	CountByPost(postID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByReview loads comments without owner preloads; enrichment happens in
// the service, one owner at a time, degradable per comment.
func (r *commentRepository) GetByReview(reviewID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("review_id = ?", reviewID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetByPost(postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountByReview(reviewID int64) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("review_id = ?", reviewID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *commentRepository) CountByPost(postID int64) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
