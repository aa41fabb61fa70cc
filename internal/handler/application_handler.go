package handler

import (
	"context"
	"net/http"
	"time"

	"squadhr/internal/middleware"
	"squadhr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationStore interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Application, error)
	Transition(ctx context.Context, id uuid.UUID, next model.RecruitmentStatus, reason string) (*model.Application, error)
}

type ApplicationHandler struct {
	applications ApplicationStore
}

func NewApplicationHandler(applications ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type CreateApplicationRequest struct {
	VacancyID string `json:"vacancy_id" binding:"required,uuid"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,recruitment_status"`
	Reason string `json:"reason" binding:"max=2000"`
}

type FeedbackResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ApplicationResponse struct {
	ID          string             `json:"id"`
	VacancyID   string             `json:"vacancy_id"`
	CandidateID string             `json:"candidate_id"`
	Status      string             `json:"status"`
	Feedback    []FeedbackResponse `json:"feedback"`
}

func toApplicationResponse(app *model.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          app.ID.String(),
		VacancyID:   app.VacancyID.String(),
		CandidateID: app.CandidateID.String(),
		Status:      string(app.Status),
		Feedback:    make([]FeedbackResponse, 0, len(app.Feedback)),
	}
	for _, f := range app.Feedback {
		resp.Feedback = append(resp.Feedback, FeedbackResponse{
			ID:        f.ID.String(),
			Type:      string(f.Type),
			Text:      f.Text,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

// Create opens an application of the current user to a vacancy.
func (h *ApplicationHandler) Create(c *gin.Context) {
	candidateID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	app := &model.Application{
		VacancyID:   uuid.MustParse(req.VacancyID),
		CandidateID: candidateID,
	}
	if err := h.applications.Create(c.Request.Context(), app); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toApplicationResponse(app))
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(app))
}

func (h *ApplicationHandler) ListByVacancy(c *gin.Context) {
	vacancyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	apps, err := h.applications.ListByVacancy(c.Request.Context(), vacancyID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, toApplicationResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Transition godoc
// @Summary      Advance an application through the recruitment pipeline
// @Description  Moves to the next pipeline step or to REFUSED and records the reason as feedback.
// @Tags         Applications
// @Accept       json
// @Produce      json
// @Param        id   path string            true "application id"
// @Param        body body TransitionRequest true "target status"
// @Success      200 {object} ApplicationResponse
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Security     BearerAuth
// @Router       /applications/{id}/transition [post]
func (h *ApplicationHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	app, err := h.applications.Transition(c.Request.Context(), id, model.RecruitmentStatus(req.Status), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(app))
}
