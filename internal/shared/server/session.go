package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// registerSessionRoutes attaches the /session endpoint. Clients use it to
// learn or confirm the id the middleware assigned them.
func registerSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", sessionHandler)
}

func sessionHandler(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	if sessionID == "" {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "session not resolved", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"sessionId": sessionID})
}
