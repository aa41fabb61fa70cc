package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"squadhr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardStore interface {
	CreateSquad(ctx context.Context, name string) (*model.Squad, error)
	GetSquad(ctx context.Context, id uuid.UUID) (*model.Squad, error)
	DeleteSquad(ctx context.Context, id uuid.UUID) error
	BoardBySquad(ctx context.Context, squadID uuid.UUID) (*model.Board, error)
	BindingsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.StatusBoard, error)
	AddColumn(ctx context.Context, boardID, statusID uuid.UUID) (*model.StatusBoard, error)
}

// BoardHandler serves squads and the columns of their boards.
type BoardHandler struct {
	boards BoardStore
}

func NewBoardHandler(boards BoardStore) *BoardHandler {
	return &BoardHandler{boards: boards}
}

type CreateSquadRequest struct {
	Name string `json:"name" binding:"required,max=128"`
}

type AddColumnRequest struct {
	StatusID string `json:"status_id" binding:"required,uuid"`
}

type ColumnResponse struct {
	ID       string `json:"id"`
	StatusID string `json:"status_id"`
	Status   string `json:"status"`
	Crucial  bool   `json:"crucial"`
}

type SquadResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	BoardID   string           `json:"board_id"`
	Columns   []ColumnResponse `json:"columns"`
	CreatedAt string           `json:"created_at"`
}

func toColumnResponse(sb model.StatusBoard) ColumnResponse {
	return ColumnResponse{
		ID:       sb.ID.String(),
		StatusID: sb.StatusID.String(),
		Status:   sb.Status.Name,
		Crucial:  sb.Status.Crucial,
	}
}

func toColumnResponses(columns []model.StatusBoard) []ColumnResponse {
	resp := make([]ColumnResponse, 0, len(columns))
	for _, col := range columns {
		resp = append(resp, toColumnResponse(col))
	}
	return resp
}

func toSquadResponse(s *model.Squad) SquadResponse {
	resp := SquadResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Columns:   []ColumnResponse{},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.Board != nil {
		resp.BoardID = s.Board.ID.String()
		resp.Columns = toColumnResponses(s.Board.Columns)
	}
	return resp
}

// CreateSquad godoc
// @Summary  Create a squad with its board and default columns
// @Tags     Squads
// @Accept   json
// @Produce  json
// @Param    body body CreateSquadRequest true "squad"
// @Success  201 {object} SquadResponse
// @Failure  409 {object} map[string]string
// @Security BearerAuth
// @Router   /squads [post]
func (h *BoardHandler) CreateSquad(c *gin.Context) {
	var req CreateSquadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Squad name is required"})
		return
	}

	squad, err := h.boards.CreateSquad(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSquadResponse(squad))
}

func (h *BoardHandler) GetSquad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	squad, err := h.boards.GetSquad(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSquadResponse(squad))
}

func (h *BoardHandler) DeleteSquad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.boards.DeleteSquad(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) ListColumns(c *gin.Context) {
	squadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.BoardBySquad(c.Request.Context(), squadID)
	if err != nil {
		respondError(c, err)
		return
	}
	columns, err := h.boards.BindingsOfBoard(c.Request.Context(), board.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toColumnResponses(columns))
}

// AddColumn godoc
// @Summary  Bind a catalog status to the squad's board
// @Tags     Squads
// @Accept   json
// @Produce  json
// @Param    id   path string           true "squad id"
// @Param    body body AddColumnRequest true "column"
// @Success  201 {object} ColumnResponse
// @Failure  404 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Security BearerAuth
// @Router   /squads/{id}/columns [post]
func (h *BoardHandler) AddColumn(c *gin.Context) {
	squadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	statusID := uuid.MustParse(req.StatusID)

	board, err := h.boards.BoardBySquad(c.Request.Context(), squadID)
	if err != nil {
		respondError(c, err)
		return
	}
	column, err := h.boards.AddColumn(c.Request.Context(), board.ID, statusID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toColumnResponse(*column))
}
