package middleware

import "github.com/gin-gonic/gin"

// SessionIDHeader lets a dashboard tab identify itself for analytics.
// There is no authentication; the value is opaque.
const SessionIDHeader = "X-Session-ID"

// GetSessionID returns the caller-supplied session ID, falling back to the
// client IP so events from one browser still group together.
func GetSessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}
