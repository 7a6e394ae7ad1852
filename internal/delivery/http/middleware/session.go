package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/repository"
)

// ProfileIDKey is the gin context key the session middleware sets.
const ProfileIDKey = "profile_id"

// SessionMiddleware gates routes behind the signup bootstrap. There is no
// credential check: the app has exactly one local session, established by
// POST /auth/signup.
type SessionMiddleware struct {
	sessionRepo repository.SessionRepository
}

func NewSessionMiddleware(sessionRepo repository.SessionRepository) *SessionMiddleware {
	return &SessionMiddleware{sessionRepo: sessionRepo}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := m.sessionRepo.CurrentProfileID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "sign up first",
			})
			return
		}
		c.Set(ProfileIDKey, profileID)
		c.Next()
	}
}
