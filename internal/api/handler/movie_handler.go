package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelcritic/internal/api/service"
	"reelcritic/internal/shared"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// RegisterRoutes registers movie routes.
func (h *MovieHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("", h.List)
	public.GET("/search", h.Suggest)
	public.GET("/search/external", h.SuggestExternal)
	public.GET("/:id", h.Resolve)

	protected.POST("/:id/like", h.ToggleLike)
}

// List returns the local catalog
// GET /api/movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// Resolve walks the fallback chain for a movie id. The chain is total: the
// response is always 200 with the outcome in the source tag.
// GET /api/movies/:id
func (h *MovieHandler) Resolve(c *gin.Context) {
	resolution := h.movieService.Resolve(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, resolution)
}

// Suggest returns autocomplete entries from the local catalog
// GET /api/movies/search?query=
func (h *MovieHandler) Suggest(c *gin.Context) {
	suggestions, err := h.movieService.Suggest(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// SuggestExternal proxies the provider's autocomplete
// GET /api/movies/search/external?query=
func (h *MovieHandler) SuggestExternal(c *gin.Context) {
	results, err := h.movieService.SuggestExternal(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// ToggleLike flips the caller's like on a movie
// POST /api/movies/:id/like
func (h *MovieHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	resp, err := h.movieService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
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

	c.JSON(http.StatusOK, resp)
}
