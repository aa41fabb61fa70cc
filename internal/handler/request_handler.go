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

type RequestStore interface {
	Create(ctx context.Context, req *model.Request) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Request, error)
	Resolve(ctx context.Context, id uuid.UUID, status model.RequestStatus, reason string) (*model.Request, error)
}

type RequestHandler struct {
	requests RequestStore
}

func NewRequestHandler(requests RequestStore) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type CreateRequestRequest struct {
	RequestType string `json:"request_type" binding:"required,request_type"`
	Reason      string `json:"reason" binding:"max=2000"`
}

type ResolveRequestRequest struct {
	Status string `json:"status" binding:"required,request_resolution"`
	Reason string `json:"reason" binding:"max=2000"`
}

type RequestResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	Date        string `json:"date"`
}

func toRequestResponse(r *model.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		RequestType: string(r.RequestType),
		Status:      string(r.Status),
		Reason:      r.Reason,
		Date:        r.Date.Format(time.RFC3339),
	}
}

// Create files a pending request on behalf of the current user.
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var body CreateRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req := &model.Request{
		UserID:      userID,
		RequestType: model.RequestType(body.RequestType),
		Reason:      body.Reason,
	}
	if err := h.requests.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRequestResponse(req))
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	requests, err := h.requests.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, toRequestResponse(&requests[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve godoc
// @Summary      Approve or reject a pending request
// @Description  Approval applies the request's counter change to its user in the same transaction.
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Param        id   path string                true "request id"
// @Param        body body ResolveRequestRequest true "resolution"
// @Success      200 {object} RequestResponse
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Security     BearerAuth
// @Router       /requests/{id}/resolve [post]
func (h *RequestHandler) Resolve(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body ResolveRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req, err := h.requests.Resolve(c.Request.Context(), id, model.RequestStatus(body.Status), body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRequestResponse(req))
}
