package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/models"
	"reelcritic/internal/api/repository"
	"reelcritic/internal/cache"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrStoryNotFound = errors.New("story not found")
)

const (
	feedPostLimit     = 50
	trendingPostLimit = 10

	// Stories drop out of the feed a day after posting.
	storyLifetime = 24 * time.Hour
)

type FeedService interface {
	Home(ctx context.Context, viewerID int64) (*dto.FeedResponse, error)
	Stories(ctx context.Context, viewerID int64) ([]dto.StoryResponse, error)
	Trending(ctx context.Context, viewerID int64) ([]dto.PostResponse, error)
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostDTO) (*dto.PostResponse, error)
	TogglePostLike(ctx context.Context, rawPostID string, userID int64) (*dto.PostResponse, error)
	PostComments(ctx context.Context, rawPostID string) ([]dto.CommentResponse, error)
	AddPostComment(ctx context.Context, rawPostID string, userID int64, content string) (*dto.CommentResponse, error)
	CreateStory(ctx context.Context, userID int64, req *dto.CreateStoryDTO) (*dto.StoryResponse, error)
	MarkStoryViewed(ctx context.Context, rawStoryID string, viewerID int64) error
}

type feedService struct {
	postRepo    repository.PostRepository
	storyRepo   repository.StoryRepository
	movieRepo   repository.MovieRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	views       *cache.LikeStore
}

func NewFeedService(
	postRepo repository.PostRepository,
	storyRepo repository.StoryRepository,
	movieRepo repository.MovieRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	views *cache.LikeStore,
) FeedService {
	return &feedService{
		postRepo:    postRepo,
		storyRepo:   storyRepo,
		movieRepo:   movieRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		views:       views,
	}
}

// Home assembles the feed: fresh stories with per-viewer viewed flags, then
// posts newest-first.
func (s *feedService) Home(ctx context.Context, viewerID int64) (*dto.FeedResponse, error) {
	storyViews, err := s.Stories(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.List(feedPostLimit)
	if err != nil {
		return nil, err
	}
	postViews := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		postViews = append(postViews, *s.buildPostView(&posts[i], viewerID))
	}

	return &dto.FeedResponse{
		Stories: storyViews,
		Posts:   postViews,
	}, nil
}

// Stories lists stories still inside their lifetime, with per-viewer viewed
// flags.
func (s *feedService) Stories(ctx context.Context, viewerID int64) ([]dto.StoryResponse, error) {
	stories, err := s.storyRepo.ListSince(time.Now().Add(-storyLifetime))
	if err != nil {
		return nil, err
	}

	// View marks are best-effort; a cache miss just shows stories unviewed
	viewed := map[int64]bool{}
	if viewerID != 0 {
		if v, err := s.views.ViewedStories(ctx, viewerID); err == nil {
			viewed = v
		}
	}

	views := make([]dto.StoryResponse, 0, len(stories))
	for i := range stories {
		views = append(views, *dto.FromModelToStoryResponse(&stories[i], viewed[stories[i].ID]))
	}
	return views, nil
}

// Trending lists the most-liked posts.
func (s *feedService) Trending(ctx context.Context, viewerID int64) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.Trending(trendingPostLimit)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		views = append(views, *s.buildPostView(&posts[i], viewerID))
	}
	return views, nil
}

// buildPostView joins a post with its best-effort comment count. A failed
// count degrades the single entry to zero, never drops it.
func (s *feedService) buildPostView(post *models.Post, viewerID int64) *dto.PostResponse {
	commentCount := 0
	if total, err := s.commentRepo.CountByPost(post.ID); err == nil {
		commentCount = int(total)
	}
	return dto.FromModelToPostResponse(post, viewerID, commentCount)
}

// CreatePost persists the post before answering, so the returned entry is
// already confirmed; clients never hold an optimistic record the backend
// might not have.
func (s *feedService) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostDTO) (*dto.PostResponse, error) {
	post := &models.Post{
		UserID:  userID,
		Content: req.Content,
		Images:  req.Images,
		Status:  models.PostStatusConfirmed,
	}

	if req.MovieID != nil {
		movieID, err := parseLocalID(*req.MovieID)
		if err != nil {
			return nil, err
		}
		if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
		post.MovieID = &movieID
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// Reload with author and movie card attached
	post, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return nil, err
	}
	return s.buildPostView(post, userID), nil
}

// TogglePostLike flips the caller's membership in the post's like list.
func (s *feedService) TogglePostLike(ctx context.Context, rawPostID string, userID int64) (*dto.PostResponse, error) {
	postID, err := parseLocalID(rawPostID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.ToggleLike(postID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.buildPostView(post, userID), nil
}

// PostComments returns a post's comments with each owner merged in. A failed
// owner fetch leaves that one comment without user details, never drops it.
func (s *feedService) PostComments(ctx context.Context, rawPostID string) ([]dto.CommentResponse, error) {
	postID, err := parseLocalID(rawPostID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPost(postID)
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

// AddPostComment posts a comment on a feed post.
func (s *feedService) AddPostComment(ctx context.Context, rawPostID string, userID int64, content string) (*dto.CommentResponse, error) {
	postID, err := parseLocalID(rawPostID)
	if err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:  &postID,
		UserID:  userID,
		Content: content,
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

// CreateStory publishes a story.
func (s *feedService) CreateStory(ctx context.Context, userID int64, req *dto.CreateStoryDTO) (*dto.StoryResponse, error) {
	story := &models.Story{
		UserID:    userID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
	}
	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(story.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToStoryResponse(story, false), nil
}

// MarkStoryViewed records that the viewer has opened the story.
func (s *feedService) MarkStoryViewed(ctx context.Context, rawStoryID string, viewerID int64) error {
	storyID, err := parseLocalID(rawStoryID)
	if err != nil {
		return err
	}
	if _, err := s.storyRepo.GetByID(storyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoryNotFound
		}
		return err
	}
	return s.views.MarkStoryViewed(ctx, viewerID, storyID)
}
