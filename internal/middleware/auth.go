package middleware

import (
	"net/http"

	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/auth"
	"github.com/isacgustavsson/web-dev-fun-portfolio/internal/models"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session_id"

// SessionContext resolves the session cookie for every request and, when it
// maps to a live session, stores it in the gin context. Anonymous requests
// pass through untouched; only mutation routes care, and they check below.
func SessionContext(authService *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Next()
			return
		}

		session, err := authService.ValidateSession(sessionID)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}

// CurrentSession returns the session set by SessionContext, or nil for an
// anonymous request.
func CurrentSession(c *gin.Context) *models.Session {
	if v, exists := c.Get("session"); exists {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

// AdminRequired gates the work item mutation routes. Anonymous and
// non-admin requesters get the same answer: a redirect to the login page,
// with no hint about which check failed.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if !session.IsLoggedIn() || !session.IsAdmin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
