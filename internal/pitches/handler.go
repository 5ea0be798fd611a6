package pitches

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchmaker-backend/internal/llm"
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
	rg.POST("/generate-pitch", h.generate)
	rg.GET("/pitches", h.list)
	rg.GET("/pitches/:id", h.get)
	rg.PUT("/pitches/:id", h.update)
	rg.DELETE("/pitches/:id", h.delete)
}

type generateRequest struct {
	JobDescription   string `json:"job_description"`
	JobTitle         string `json:"job_title"`
	CompanyName      string `json:"company_name"`
	JobDescriptionID string `json:"job_description_id"`
	UseSavedProfile  *bool  `json:"use_saved_profile"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	useSavedProfile := true
	if req.UseSavedProfile != nil {
		useSavedProfile = *req.UseSavedProfile
	}

	pitch, err := h.Svc.Generate(c.Request.Context(), userID, GenerateInput{
		JobDescription:   req.JobDescription,
		JobTitle:         req.JobTitle,
		CompanyName:      req.CompanyName,
		JobDescriptionID: req.JobDescriptionID,
		UseSavedProfile:  useSavedProfile,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required")
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "llm_not_configured", "Pitch generation is not configured")
		default:
			respond.Error(c, http.StatusInternalServerError, "generation_failed", "Failed to generate pitch")
		}
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"pitch":           pitch,
		"generated_pitch": pitch.GeneratedPitch,
	})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch pitches")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"pitches": items})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	pitch, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Pitch not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch pitch")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"pitch": pitch})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var update Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	pitch, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "pitch_status must be one of generated, favorited, used")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Pitch not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to update pitch")
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"pitch": pitch})
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Pitch not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete pitch")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Pitch deleted successfully"})
}
