package repository

import (
	"context"

	"reelcritic/internal/api/models"

	"gorm.io/gorm"
)

// MovieRepository defines the interface for the local movie store.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

// GetAll returns the corpus in insertion order; autocomplete preserves this
// order rather than ranking by relevance.
func (r *movieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}
