package repository

import (
	"time"

	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story operations. Stories are
// ephemeral: only entries newer than the cutoff are served.
type StoryRepository interface {
	Create(story *models.Story) error
	GetByID(storyID int64) (*models.Story, error)
	ListSince(cutoff time.Time) ([]models.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *models.Story) error {
	return r.db.Create(story).Error
}

func (r *storyRepository) GetByID(storyID int64) (*models.Story, error) {
	var story models.Story
	if err := r.db.Preload("User").First(&story, "id = ?", storyID).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) ListSince(cutoff time.Time) ([]models.Story, error) {
	var stories []models.Story
	err := r.db.Where("created_at > ?", cutoff).
		Preload("User").
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}
