package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/models"
	"reelcritic/internal/api/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("you don't have permission to update this review")
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID int64, req *dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, rawReviewID string, userID int64, req *dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	ListByMovie(ctx context.Context, rawMovieID string, viewerID int64) ([]dto.ReviewResponse, error)
	ListByUser(ctx context.Context, rawUserID string, viewerID int64) ([]dto.ReviewResponse, error)
	ToggleLike(ctx context.Context, rawReviewID string, userID int64) (*dto.ReviewResponse, error)
	Comments(ctx context.Context, rawReviewID string) ([]dto.CommentResponse, error)
	AddComment(ctx context.Context, rawReviewID string, userID int64, content string) (*dto.CommentResponse, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	movieRepo   repository.MovieRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		movieRepo:   movieRepo,
	}
}

// CreateReview posts a review on a local movie.
func (s *reviewService) CreateReview(ctx context.Context, userID int64, req *dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	movieID, err := parseLocalID(req.MovieID)
	if err != nil {
		return nil, err
	}
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:    userID,
		MovieID:   movieID,
		Content:   req.Content,
		Rating:    req.Rating,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	return s.buildReviewView(review, userID), nil
}

// UpdateReview edits a review's content or rating; only the owner may.
func (s *reviewService) UpdateReview(ctx context.Context, rawReviewID string, userID int64, req *dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	reviewID, err := parseLocalID(rawReviewID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	if req.Content != nil {
		review.Content = *req.Content
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	return s.buildReviewView(review, userID), nil
}

// ListByMovie returns display-ready review aggregates for a movie, newest
// first. The list is total over partial data: a review whose owner fetch
// fails is kept with its user left unset.
func (s *reviewService) ListByMovie(ctx context.Context, rawMovieID string, viewerID int64) ([]dto.ReviewResponse, error) {
	movieID, err := parseLocalID(rawMovieID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByMovie(movieID)
	if err != nil {
		return nil, err
	}
	return s.buildReviewViews(reviews, viewerID), nil
}

// ListByUser returns a user's reviews, newest first.
func (s *reviewService) ListByUser(ctx context.Context, rawUserID string, viewerID int64) ([]dto.ReviewResponse, error) {
	userID, err := parseLocalID(rawUserID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.buildReviewViews(reviews, viewerID), nil
}

func (s *reviewService) buildReviewViews(reviews []models.Review, viewerID int64) []dto.ReviewResponse {
	views := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		views = append(views, *s.buildReviewView(&reviews[i], viewerID))
	}

	// Newest first; a zero CreatedAt sorts oldest
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// buildReviewView joins a review with its owner summary and comment count.
// Enrichment failures degrade the single aggregate, never drop it.
func (s *reviewService) buildReviewView(review *models.Review, viewerID int64) *dto.ReviewResponse {
	commentCount := 0
	if total, err := s.commentRepo.CountByReview(review.ID); err == nil {
		commentCount = int(total)
	}

	view := dto.FromModelToReviewResponse(review, viewerID, commentCount)
	if owner, err := s.userRepo.FindByID(review.UserID); err == nil {
		view.User = dto.FromModelToUserSummary(owner)
	}
	return view
}

// ToggleLike flips the caller's membership in the review's like list.
func (s *reviewService) ToggleLike(ctx context.Context, rawReviewID string, userID int64) (*dto.ReviewResponse, error) {
	reviewID, err := parseLocalID(rawReviewID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.ToggleLike(reviewID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.buildReviewView(review, userID), nil
}

// Comments returns the review's comments with each owner merged in, lazily on
// first expansion. A failed owner fetch leaves that one comment without user
// details.
func (s *reviewService) Comments(ctx context.Context, rawReviewID string) ([]dto.CommentResponse, error) {
	reviewID, err := parseLocalID(rawReviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByReview(reviewID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		view := dto.FromModelToCommentResponse(&comments[i])
		if owner, err := s.userRepo.FindByID(comments[i].UserID); err == nil {
			view.User = dto.FromModelToUserSummary(owner)
		}
		views = append(views, *view)
	}
	return views, nil
}

// AddComment posts a comment on a review.
func (s *reviewService) AddComment(ctx context.Context, rawReviewID string, userID int64, content string) (*dto.CommentResponse, error) {
	reviewID, err := parseLocalID(rawReviewID)
	if err != nil {
		return nil, err
	}
	if _, err := s.reviewRepo.GetByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: &reviewID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	view := dto.FromModelToCommentResponse(comment)
	if owner, err := s.userRepo.FindByID(userID); err == nil {
		view.User = dto.FromModelToUserSummary(owner)
	}
	return view, nil
}
