package profiles

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchmaker-backend/internal/shared/server/middleware"
	"pitchmaker-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.update)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Svc.GetOrCreate(
		c.Request.Context(),
		userID,
		middleware.UserEmailFromContext(c),
		middleware.UserNameFromContext(c),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to load user")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":        profile.ID,
		"email":     profile.Email,
		"full_name": profile.FullName,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.Svc.GetOrCreate(
		c.Request.Context(),
		userID,
		middleware.UserEmailFromContext(c),
		middleware.UserNameFromContext(c),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch profile")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var update Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	profile, err := h.Svc.Update(c.Request.Context(), userID, middleware.UserEmailFromContext(c), update)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update profile")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"profile": profile})
}
