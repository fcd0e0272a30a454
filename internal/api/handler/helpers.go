package handler

import "github.com/gin-gonic/gin"

// currentUserID returns the authenticated user's id from the request context.
// Behind AuthMiddleware the second return is always true; on optional-auth
// routes a zero id means an anonymous viewer.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
