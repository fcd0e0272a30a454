package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/service"
	"reelcritic/internal/shared"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterRoutes registers feed, post and story routes.
func (h *FeedHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/feed", h.Home)
	public.GET("/feed/trending", h.Trending)
	public.GET("/stories", h.Stories)
	public.GET("/posts/:id/comments", h.PostComments)

	protected.POST("/posts", h.CreatePost)
	protected.POST("/posts/:id/like", h.TogglePostLike)
	protected.POST("/posts/:id/comments", h.AddPostComment)
	protected.POST("/stories", h.CreateStory)
	protected.POST("/stories/:id/view", h.MarkStoryViewed)
}

// Home returns the assembled feed
// GET /api/feed
func (h *FeedHandler) Home(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	feed, err := h.feedService.Home(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Stories returns the stories still inside their lifetime
// GET /api/stories
func (h *FeedHandler) Stories(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	stories, err := h.feedService.Stories(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stories)
}

// Trending returns the most-liked posts
// GET /api/feed/trending
func (h *FeedHandler) Trending(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	posts, err := h.feedService.Trending(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost publishes a post; the response is the persisted, confirmed entry
// POST /api/posts
func (h *FeedHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.feedService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// TogglePostLike flips the caller's like on a post
// POST /api/posts/:id/like
func (h *FeedHandler) TogglePostLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	post, err := h.feedService.TogglePostLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// PostComments returns a post's comments with owners merged in
// GET /api/posts/:id/comments
func (h *FeedHandler) PostComments(c *gin.Context) {
	comments, err := h.feedService.PostComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddPostComment posts a comment on a feed post
// POST /api/posts/:id/comments
func (h *FeedHandler) AddPostComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.feedService.AddPostComment(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// CreateStory publishes a story
// POST /api/stories
func (h *FeedHandler) CreateStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateStoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := h.feedService.CreateStory(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, story)
}

// MarkStoryViewed records that the caller opened the story
// POST /api/stories/:id/view
func (h *FeedHandler) MarkStoryViewed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.feedService.MarkStoryViewed(c.Request.Context(), c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story ID"})
		case errors.Is(err, service.ErrStoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "story marked as viewed"})
}
