package repository

import (
	"errors"

	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations. Likes
// live in their own table; Create/ToggleLike keep the derived counters on
// users consistent inside one transaction.
type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	GetByID(reviewID int64) (*models.Review, error)
	GetByMovie(movieID int64) ([]models.Review, error)
	GetByUser(userID int64) ([]models.Review, error)
	ToggleLike(reviewID, userID int64) (*models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review and bumps the author's review_count in the same
// transaction.
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", review.UserID).
			UpdateColumn("review_count", gorm.Expr("review_count + 1")).Error
	})
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) GetByID(reviewID int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("Likes").First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByMovie loads reviews with their like membership. Owner records are NOT
// preloaded: the service fetches each owner independently so a single broken
// user row degrades that one aggregate instead of failing the list.
func (r *reviewRepository) GetByMovie(movieID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("movie_id = ?", movieID).
		Preload("Likes").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetByUser(userID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).
		Preload("Likes").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ToggleLike flips the caller's membership in the review's like list inside a
// transaction and returns the review with the refreshed membership.
func (r *reviewRepository) ToggleLike(reviewID, userID int64) (*models.Review, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return err
		}

		var like models.ReviewLike
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&like).Error
		switch {
		case err == nil:
			return tx.Delete(&like).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.ReviewLike{ReviewID: reviewID, UserID: userID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(reviewID)
}
