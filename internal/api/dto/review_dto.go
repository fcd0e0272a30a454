package dto

import (
	"strconv"
	"time"

	"reelcritic/internal/api/models"
)

// CreateReviewDTO for posting a review on a movie.
type CreateReviewDTO struct {
	MovieID   string  `json:"movie_id" binding:"required"`
	Content   string  `json:"content" binding:"required,min=1,max=5000"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type" binding:"omitempty,oneof=image video"`
}

// UpdateReviewDTO for editing a review's content or rating.
type UpdateReviewDTO struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=5000"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ReviewResponse is the display-ready aggregate: the review joined with its
// owner and the canonical like membership. Counts derive from the id lists.
// User stays nil when the owner lookup failed; the review is still returned.
type ReviewResponse struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	MovieID      string       `json:"movie_id"`
	Content      string       `json:"content"`
	Rating       int          `json:"rating"`
	MediaURL     *string      `json:"media_url,omitempty"`
	MediaType    *string      `json:"media_type,omitempty"`
	Likes        []string     `json:"likes"`
	LikeCount    int          `json:"like_count"`
	IsLiked      bool         `json:"is_liked"`
	CommentCount int          `json:"comment_count"`
	Shares       int          `json:"shares"`
	CreatedAt    time.Time    `json:"created_at"`
	User         *UserSummary `json:"user,omitempty"`
}

// FromModelToReviewResponse converts a Review model (with Likes loaded) to a
// ReviewResponse for the given viewer. The owner summary is merged separately
// by the service so a failed user fetch degrades instead of dropping the row.
func FromModelToReviewResponse(review *models.Review, viewerID int64, commentCount int) *ReviewResponse {
	likes := make([]string, 0, len(review.Likes))
	isLiked := false
	for _, like := range review.Likes {
		likes = append(likes, strconv.FormatInt(like.UserID, 10))
		if like.UserID == viewerID {
			isLiked = true
		}
	}

	return &ReviewResponse{
		ID:           strconv.FormatInt(review.ID, 10),
		UserID:       strconv.FormatInt(review.UserID, 10),
		MovieID:      strconv.FormatInt(review.MovieID, 10),
		Content:      review.Content,
		Rating:       review.Rating,
		MediaURL:     review.MediaURL,
		MediaType:    review.MediaType,
		Likes:        likes,
		LikeCount:    len(likes),
		IsLiked:      isLiked,
		CommentCount: commentCount,
		Shares:       review.Shares,
		CreatedAt:    review.CreatedAt,
	}
}

// CreateCommentDTO for commenting on a review or post.
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse mirrors ReviewResponse's degradation rule: a comment whose
// owner lookup failed keeps User nil and is still returned.
type CommentResponse struct {
	ID        string       `json:"id"`
	ReviewID  string       `json:"review_id,omitempty"`
	PostID    string       `json:"post_id,omitempty"`
	Content   string       `json:"content"`
	Likes     int          `json:"likes"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user,omitempty"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO.
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        strconv.FormatInt(comment.ID, 10),
		Content:   comment.Content,
		Likes:     comment.Likes,
		CreatedAt: comment.CreatedAt,
	}
	if comment.ReviewID != nil {
		resp.ReviewID = strconv.FormatInt(*comment.ReviewID, 10)
	}
	if comment.PostID != nil {
		resp.PostID = strconv.FormatInt(*comment.PostID, 10)
	}
	return resp
}
