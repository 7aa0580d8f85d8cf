package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-builder/internal/shared/server/respond"
)

const (
	sessionIDKey    = "sessionId"
	sessionIDHeader = "X-Session-Id"
	maxSessionIDLen = 128
)

// Session resolves the caller's session identifier. A missing header mints
// a fresh id; either way the response echoes it so the client can persist
// it. The id is an opaque browsing-session tag, not an authenticated
// identity.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		id := strings.TrimSpace(c.GetHeader(sessionIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		if !validSessionID(id) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid session id", nil)
			return
		}

		c.Set(sessionIDKey, id)
		c.Header(sessionIDHeader, id)
		c.Next()
	}
}

func validSessionID(id string) bool {
	if len(id) > maxSessionIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

// SessionIDFromContext fetches the session id set by the session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
