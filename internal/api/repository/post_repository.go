package repository

import (
	"errors"

	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for feed post operations.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(postID int64) (*models.Post, error)
	List(limit int) ([]models.Post, error)
	Trending(limit int) ([]models.Post, error)
	ToggleLike(postID, userID int64) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(postID int64) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").
		Preload("Movie").
		Preload("Likes").
		First(&post, "id = ?", postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns confirmed posts newest-first, which matches the feed's
// prepend-on-create presentation order.
func (r *postRepository) List(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", models.PostStatusConfirmed).
		Preload("User").
		Preload("Movie").
		Preload("Likes").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Trending orders confirmed posts by like membership size.
func (r *postRepository) Trending(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", models.PostStatusConfirmed).
		Preload("User").
		Preload("Movie").
		Preload("Likes").
		Order("(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips the caller's membership in the post's like list.
func (r *postRepository) ToggleLike(postID, userID int64) (*models.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		var like models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
		switch {
		case err == nil:
			return tx.Delete(&like).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(postID)
}
