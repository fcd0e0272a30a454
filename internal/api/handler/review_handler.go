package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/service"
	"reelcritic/internal/shared"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes.
func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup, publicMovies *gin.RouterGroup) {
	publicMovies.GET("/:id/reviews", h.ListByMovie)

	public.GET("", h.List)
	public.GET("/:id/comments", h.Comments)

	protected.POST("", h.Create)
	protected.PATCH("/:id", h.Update)
	protected.POST("/:id/like", h.ToggleLike)
	protected.POST("/:id/comments", h.AddComment)
}

// List returns reviews filtered by author
// GET /api/reviews?userId=
func (h *ReviewHandler) List(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), userID, viewerID)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ListByMovie returns display-ready review aggregates for a movie
// GET /api/movies/:id/reviews
func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	reviews, err := h.reviewService.ListByMovie(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create posts a review
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, &req)
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

	c.JSON(http.StatusCreated, review)
}

// Update edits the caller's own review
// PATCH /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotReviewOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// ToggleLike flips the caller's like on a review
// POST /api/reviews/:id/like
func (h *ReviewHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	review, err := h.reviewService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// Comments returns a review's comments with owners merged in
// GET /api/reviews/:id/comments
func (h *ReviewHandler) Comments(c *gin.Context) {
	comments, err := h.reviewService.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment posts a comment on a review
// POST /api/reviews/:id/comments
func (h *ReviewHandler) AddComment(c *gin.Context) {
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

	comment, err := h.reviewService.AddComment(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}
