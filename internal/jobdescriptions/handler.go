package jobdescriptions

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
	rg.GET("/job-descriptions", h.list)
	rg.POST("/job-descriptions", h.create)
	rg.DELETE("/job-descriptions", h.delete)
}

type createRequest struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch job descriptions")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"job_descriptions": items,
		"count":            len(items),
	})
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	jd, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Description: req.Description,
		SourceURL:   req.SourceURL,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "description is required")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to save job description")
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"job_description": jd})
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := c.Query("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id query parameter is required")
		return
	}

	jd, err := h.Svc.Delete(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job description not found")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "id query parameter is required")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete job description")
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"message":                 "Job description deleted successfully",
		"deleted_job_description": jd,
	})
}
