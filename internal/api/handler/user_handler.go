package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelcritic/internal/api/dto"
	"reelcritic/internal/api/service"
	"reelcritic/internal/shared"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user routes. Reads are public with an optional
// viewer; every mutation is behind the parent's auth middleware.
func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("", h.List)
	public.GET("/:id", h.Get)

	protected.PATCH("/:id", h.Update)
	protected.POST("/:id/follow", h.ToggleFollow)
}

// List returns all users
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	users, err := h.userService.GetAll(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get returns a user profile
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	viewerID, _ := currentUserID(c)

	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update patches the caller's own profile
// PATCH /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("id"), actorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		case errors.Is(err, service.ErrNotProfileOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleFollow flips the caller's follow state on the target user
// POST /api/users/:id/follow
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	resp, err := h.userService.ToggleFollow(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
