package pitchhistory

import (
	"errors"
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
	rg.GET("/pitch-history", h.list)
	rg.DELETE("/pitch-history", h.delete)
}

type deleteRequest struct {
	HistoryID string `json:"historyId"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if c.Query("detailed") == "true" {
		entries, err := h.Svc.ListDetailed(c.Request.Context(), userID)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch pitch history")
			return
		}
		respond.JSON(c, http.StatusOK, gin.H{"history": entries})
		return
	}

	entries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch pitch history")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"history": entries})
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HistoryID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "historyId is required")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, req.HistoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "History entry not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete history entry")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "History entry deleted successfully"})
}
