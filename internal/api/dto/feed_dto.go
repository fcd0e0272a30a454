package dto

import (
	"strconv"
	"time"

	"reelcritic/internal/api/models"
)

// CreatePostDTO for publishing a feed post, optionally tagged with a movie.
type CreatePostDTO struct {
	Content string   `json:"content" binding:"required,min=1,max=5000"`
	Images  []string `json:"images" binding:"omitempty,max=4,dive,url"`
	MovieID *string  `json:"movie_id"`
}

// PostResponse is a feed entry with its author and optional movie card.
type PostResponse struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	Images       []string      `json:"images"`
	Likes        []string      `json:"likes"`
	LikeCount    int           `json:"like_count"`
	IsLiked      bool          `json:"is_liked"`
	CommentCount int           `json:"comment_count"`
	Shares       int           `json:"shares"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	User         *UserSummary  `json:"user,omitempty"`
	Movie        *MovieSummary `json:"movie,omitempty"`
}

// FromModelToPostResponse converts a Post model (with User, Movie and Likes
// loaded) to a PostResponse for the given viewer. The comment count is
// fetched separately by the service so a failed count degrades to zero.
func FromModelToPostResponse(post *models.Post, viewerID int64, commentCount int) *PostResponse {
	likes := make([]string, 0, len(post.Likes))
	isLiked := false
	for _, like := range post.Likes {
		likes = append(likes, strconv.FormatInt(like.UserID, 10))
		if like.UserID == viewerID {
			isLiked = true
		}
	}

	resp := &PostResponse{
		ID:           strconv.FormatInt(post.ID, 10),
		Content:      post.Content,
		Images:       post.Images,
		Likes:        likes,
		LikeCount:    len(likes),
		IsLiked:      isLiked,
		CommentCount: commentCount,
		Shares:       post.Shares,
		Status:       post.Status,
		CreatedAt:    post.CreatedAt,
		User:         FromModelToUserSummary(&post.User),
	}
	if post.Movie != nil {
		summary := FromModelToMovieSummary(post.Movie)
		resp.Movie = &summary
	}
	return resp
}

// CreateStoryDTO for publishing a story.
type CreateStoryDTO struct {
	MediaURL  string `json:"media_url" binding:"required,url"`
	MediaType string `json:"media_type" binding:"required,oneof=image video"`
}

// StoryResponse is a story with the per-viewer viewed flag resolved.
type StoryResponse struct {
	ID        string       `json:"id"`
	MediaURL  string       `json:"media_url"`
	MediaType string       `json:"media_type"`
	Viewed    bool         `json:"viewed"`
	CreatedAt time.Time    `json:"created_at"`
	User      *UserSummary `json:"user,omitempty"`
}

// FromModelToStoryResponse converts a Story model to StoryResponse DTO.
func FromModelToStoryResponse(story *models.Story, viewed bool) *StoryResponse {
	return &StoryResponse{
		ID:        strconv.FormatInt(story.ID, 10),
		MediaURL:  story.MediaURL,
		MediaType: story.MediaType,
		Viewed:    viewed,
		CreatedAt: story.CreatedAt,
		User:      FromModelToUserSummary(&story.User),
	}
}

// FeedResponse is the assembled home feed: fresh stories first, then posts
// newest-first.
type FeedResponse struct {
	Stories []StoryResponse `json:"stories"`
	Posts   []PostResponse  `json:"posts"`
}
