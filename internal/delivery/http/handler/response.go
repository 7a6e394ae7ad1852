package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/delivery/http/middleware"
)

// ErrorResponse is the error body every handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionProfileID reads the profile id the session middleware stored.
func sessionProfileID(c *gin.Context) string {
	id, _ := c.Get(middleware.ProfileIDKey)
	s, _ := id.(string)
	return s
}
