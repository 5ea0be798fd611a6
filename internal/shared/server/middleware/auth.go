package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pitchmaker-backend/internal/shared/auth"
	"pitchmaker-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"

	// SessionCookie is the cookie the UI stores the session token in.
	SessionCookie = "pitchmaker_session"
)

// Auth validates session tokens and stores identity in context. Tokens are
// accepted either as an Authorization bearer header or the session cookie.
// Sign-in and health routes are exempt.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/auth/") ||
			strings.HasPrefix(path, "/api/auth/") ||
			path == "/api/health" {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = strings.TrimSpace(cookie)
			}
		}
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		c.Set(userIDKey, claims.Sub)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		if claims.Name != "" {
			c.Set(userNameKey, claims.Name)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserNameFromContext fetches the user name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}
