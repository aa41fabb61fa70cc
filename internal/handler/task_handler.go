package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"squadhr/internal/middleware"
	"squadhr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskStore interface {
	CreateInSquad(ctx context.Context, squadID, statusID uuid.UUID, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Task, error)
	Move(ctx context.Context, taskID, statusID uuid.UUID) (*model.Task, error)
}

type SquadBoardFinder interface {
	BoardBySquad(ctx context.Context, squadID uuid.UUID) (*model.Board, error)
}

type TaskHandler struct {
	tasks  TaskStore
	boards SquadBoardFinder
}

func NewTaskHandler(tasks TaskStore, boards SquadBoardFinder) *TaskHandler {
	return &TaskHandler{tasks: tasks, boards: boards}
}

// TaskRequest представляет запрос на создание задачи в колонке сквада
type TaskRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	StatusID    string     `json:"status_id" binding:"required,uuid"`
	Priority    int        `json:"priority" binding:"min=0,max=10"`
	Difficulty  int        `json:"difficulty" binding:"min=0,max=10"`
	Deadline    *time.Time `json:"deadline"`
}

// TaskMoveRequest представляет запрос на перемещение задачи
type TaskMoveRequest struct {
	StatusID string `json:"status_id" binding:"required,uuid"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	Difficulty  int     `json:"difficulty"`
	Deadline    *string `json:"deadline,omitempty"`
	ColumnID    string  `json:"column_id"`
	StatusID    string  `json:"status_id"`
	Status      string  `json:"status,omitempty"`
	AssignedBy  string  `json:"assigned_by"`
}

func toTaskResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Difficulty:  t.Difficulty,
		ColumnID:    t.StatusBoardID.String(),
		StatusID:    t.StatusBoard.StatusID.String(),
		Status:      t.StatusBoard.Status.Name,
		AssignedBy:  t.AssignedByID.String(),
	}
	if t.Deadline != nil {
		deadline := t.Deadline.Format(time.RFC3339)
		resp.Deadline = &deadline
	}
	return resp
}

// Create godoc
// @Summary  Create a task in one of the squad's columns
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id   path string      true "squad id"
// @Param    body body TaskRequest true "task"
// @Success  201 {object} TaskResponse
// @Failure  404 {object} map[string]string "squad or status not found"
// @Security BearerAuth
// @Router   /squads/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	// Получаем ID текущего пользователя из контекста
	assignedBy, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	squadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task title is required"})
		return
	}

	task := &model.Task{
		Title:        title,
		Description:  req.Description,
		Priority:     req.Priority,
		Difficulty:   req.Difficulty,
		Deadline:     req.Deadline,
		AssignedByID: assignedBy,
	}

	// Колонка определяется только через доску сквада
	if err := h.tasks.CreateInSquad(c.Request.Context(), squadID, uuid.MustParse(req.StatusID), task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ListBySquad возвращает все задачи доски сквада
func (h *TaskHandler) ListBySquad(c *gin.Context) {
	squadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.BoardBySquad(c.Request.Context(), squadID)
	if err != nil {
		respondError(c, err)
		return
	}
	tasks, err := h.tasks.ListByBoard(c.Request.Context(), board.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, toTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Move godoc
// @Summary  Move a task to another column of its own board
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id   path string          true "task id"
// @Param    body body TaskMoveRequest true "target status"
// @Success  200 {object} TaskResponse
// @Failure  404 {object} map[string]string "status not found"
// @Security BearerAuth
// @Router   /tasks/{id}/move [post]
func (h *TaskHandler) Move(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.Move(c.Request.Context(), id, uuid.MustParse(req.StatusID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}
