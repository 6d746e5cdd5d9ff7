package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the authenticated user id placed on the context
// by the auth middleware. Returns 0 on unauthenticated requests.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole reads the role claim set by the auth middleware.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
