package handler

import (
	"context"
	"net/http"
	"strings"

	"squadhr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatusStore interface {
	List(ctx context.Context) ([]model.Status, error)
	Create(ctx context.Context, name string) (*model.Status, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*model.Status, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatusHandler struct {
	statuses StatusStore
}

func NewStatusHandler(statuses StatusStore) *StatusHandler {
	return &StatusHandler{statuses: statuses}
}

type StatusRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

type StatusResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Crucial bool   `json:"crucial"`
}

func toStatusResponse(s model.Status) StatusResponse {
	return StatusResponse{ID: s.ID.String(), Name: s.Name, Crucial: s.Crucial}
}

// List godoc
// @Summary  List the status catalog
// @Tags     Statuses
// @Produce  json
// @Success  200 {array} StatusResponse
// @Security BearerAuth
// @Router   /statuses [get]
func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.statuses.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		resp = append(resp, toStatusResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary  Add a non-crucial status to the catalog
// @Tags     Statuses
// @Accept   json
// @Produce  json
// @Param    body body StatusRequest true "status"
// @Success  201 {object} StatusResponse
// @Failure  409 {object} map[string]string
// @Security BearerAuth
// @Router   /statuses [post]
func (h *StatusHandler) Create(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status name is required"})
		return
	}

	status, err := h.statuses.Create(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toStatusResponse(*status))
}

func (h *StatusHandler) Rename(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status name is required"})
		return
	}

	status, err := h.statuses.Rename(c.Request.Context(), id, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatusResponse(*status))
}

// Delete godoc
// @Summary  Remove a status that no board uses
// @Tags     Statuses
// @Param    id path string true "status id"
// @Success  204
// @Failure  404 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Security BearerAuth
// @Router   /statuses/{id} [delete]
func (h *StatusHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.statuses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
