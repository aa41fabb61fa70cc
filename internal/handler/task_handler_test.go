package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"squadhr/internal/handler"
	"squadhr/internal/model"
	"squadhr/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTasks(t *testing.T) (*gin.Engine, *MockTaskStore, *MockBoardStore) {
	r := newRouter(t)
	tasks := new(MockTaskStore)
	boards := new(MockBoardStore)
	h := handler.NewTaskHandler(tasks, boards)
	r.POST("/squads/:id/tasks", h.Create)
	r.GET("/squads/:id/tasks", h.ListBySquad)
	r.GET("/tasks/:id", h.GetByID)
	r.POST("/tasks/:id/move", h.Move)
	return r, tasks, boards
}

func TestTaskHandler_Create_AssignedByCurrentUser(t *testing.T) {
	// Arrange
	r, tasks, _ := setupTasks(t)
	squadID, statusID := uuid.New(), uuid.New()
	tasks.On("CreateInSquad", mock.Anything, squadID, statusID, mock.MatchedBy(func(task *model.Task) bool {
		return task.AssignedByID == meID && task.Title == "Onboard Bob" && task.Priority == 3
	})).Run(func(args mock.Arguments) {
		task := args.Get(3).(*model.Task)
		task.ID = uuid.New()
		task.StatusBoard = model.StatusBoard{ID: uuid.New(), StatusID: statusID}
		task.StatusBoardID = task.StatusBoard.ID
	}).Return(nil)

	// Act
	resp := doJSON(r, http.MethodPost, "/squads/"+squadID.String()+"/tasks", jsonBody{
		"title":     "  Onboard Bob ",
		"status_id": statusID.String(),
		"priority":  3,
	})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body handler.TaskResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, statusID.String(), body.StatusID)
	assert.Equal(t, meID.String(), body.AssignedBy)
	tasks.AssertExpectations(t)
}

func TestTaskHandler_Create_UnboundStatus(t *testing.T) {
	r, tasks, _ := setupTasks(t)
	squadID, statusID := uuid.New(), uuid.New()
	tasks.On("CreateInSquad", mock.Anything, squadID, statusID, mock.Anything).Return(repository.ErrBindingNotFound)

	resp := doJSON(r, http.MethodPost, "/squads/"+squadID.String()+"/tasks", jsonBody{
		"title":     "Task",
		"status_id": statusID.String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "squad or status not found")
}

func TestTaskHandler_Create_InvalidBody(t *testing.T) {
	r, tasks, _ := setupTasks(t)

	resp := doJSON(r, http.MethodPost, "/squads/"+uuid.NewString()+"/tasks", jsonBody{
		"title":     "Task",
		"status_id": "todo",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	tasks.AssertNotCalled(t, "CreateInSquad", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_Move_StatusOfAnotherSquad(t *testing.T) {
	// Arrange
	r, tasks, _ := setupTasks(t)
	taskID, foreignStatus := uuid.New(), uuid.New()
	tasks.On("Move", mock.Anything, taskID, foreignStatus).Return(nil, repository.ErrStatusNotFound)

	// Act
	resp := doJSON(r, http.MethodPost, "/tasks/"+taskID.String()+"/move", jsonBody{"status_id": foreignStatus.String()})

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "status not found")
	tasks.AssertExpectations(t)
}

func TestTaskHandler_Move_Success(t *testing.T) {
	r, tasks, _ := setupTasks(t)
	taskID, statusID, columnID := uuid.New(), uuid.New(), uuid.New()
	tasks.On("Move", mock.Anything, taskID, statusID).Return(&model.Task{
		ID:            taskID,
		Title:         "Task",
		StatusBoardID: columnID,
		StatusBoard:   model.StatusBoard{ID: columnID, StatusID: statusID},
	}, nil)

	resp := doJSON(r, http.MethodPost, "/tasks/"+taskID.String()+"/move", jsonBody{"status_id": statusID.String()})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.TaskResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, columnID.String(), body.ColumnID)
	assert.Equal(t, statusID.String(), body.StatusID)
}

func TestTaskHandler_GetByID_ResolvesStatus(t *testing.T) {
	r, tasks, _ := setupTasks(t)
	taskID, statusID := uuid.New(), uuid.New()
	tasks.On("GetByID", mock.Anything, taskID).Return(&model.Task{
		ID:          taskID,
		Title:       "Task",
		StatusBoard: model.StatusBoard{StatusID: statusID, Status: model.Status{ID: statusID, Name: model.StatusToDo}},
	}, nil)

	resp := doJSON(r, http.MethodGet, "/tasks/"+taskID.String(), nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.TaskResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, statusID.String(), body.StatusID)
	assert.Equal(t, "ToDo", body.Status)
}

func TestTaskHandler_ListBySquad_UnknownSquad(t *testing.T) {
	r, tasks, boards := setupTasks(t)
	squadID := uuid.New()
	boards.On("BoardBySquad", mock.Anything, squadID).Return(nil, repository.ErrSquadNotFound)

	resp := doJSON(r, http.MethodGet, "/squads/"+squadID.String()+"/tasks", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	tasks.AssertNotCalled(t, "ListByBoard", mock.Anything, mock.Anything)
}
