package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pitchmaker-backend/internal/auth"
	"pitchmaker-backend/internal/jobdescriptions"
	"pitchmaker-backend/internal/pitches"
	"pitchmaker-backend/internal/pitchhistory"
	"pitchmaker-backend/internal/profiles"
	"pitchmaker-backend/internal/shared/config"
	"pitchmaker-backend/internal/shared/server/middleware"
	"pitchmaker-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config              config.Config
	ProfilesHandler     *profiles.Handler
	JobDescHandler      *jobdescriptions.Handler
	PitchesHandler      *pitches.Handler
	PitchHistoryHandler *pitchhistory.Handler
	MagicLink           *auth.MagicLinkService
	GoogleAuth          *auth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
		middleware.Auth(),
	)

	if deps.MagicLink != nil {
		deps.MagicLink.RegisterCallbackRoutes(r)
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.MagicLink != nil {
		deps.MagicLink.RegisterAPIRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}
	if deps.JobDescHandler != nil {
		deps.JobDescHandler.RegisterRoutes(api)
	}
	if deps.PitchesHandler != nil {
		deps.PitchesHandler.RegisterRoutes(api)
	}
	if deps.PitchHistoryHandler != nil {
		deps.PitchHistoryHandler.RegisterRoutes(api)
	}

	return r
}

// generate-pitch shares a stricter bucket than the rest of the API.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: 10, Burst: 30},
			"GENERATE": {Rate: 0.2, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/generate-pitch") {
				return "GENERATE"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
