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

func setupBoards(t *testing.T) (*gin.Engine, *MockBoardStore) {
	r := newRouter(t)
	boards := new(MockBoardStore)
	h := handler.NewBoardHandler(boards)
	r.POST("/squads", h.CreateSquad)
	r.GET("/squads/:id", h.GetSquad)
	r.DELETE("/squads/:id", h.DeleteSquad)
	r.GET("/squads/:id/columns", h.ListColumns)
	r.POST("/squads/:id/columns", h.AddColumn)
	return r, boards
}

func seededSquad(name string) *model.Squad {
	board := &model.Board{ID: uuid.New()}
	for _, statusName := range model.CrucialStatusNames() {
		status := model.Status{ID: uuid.New(), Name: statusName, Crucial: true}
		board.Columns = append(board.Columns, model.StatusBoard{
			ID: uuid.New(), BoardID: board.ID, StatusID: status.ID, Status: status,
		})
	}
	squad := &model.Squad{ID: uuid.New(), Name: name, Board: board}
	board.SquadID = squad.ID
	return squad
}

func TestBoardHandler_CreateSquad_WithDefaultColumns(t *testing.T) {
	// Arrange
	r, boards := setupBoards(t)
	boards.On("CreateSquad", mock.Anything, "Alpha").Return(seededSquad("Alpha"), nil)

	// Act
	resp := doJSON(r, http.MethodPost, "/squads", jsonBody{"name": "Alpha"})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body handler.SquadResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Alpha", body.Name)
	assert.NotEmpty(t, body.BoardID)
	var names []string
	for _, col := range body.Columns {
		names = append(names, col.Status)
		assert.True(t, col.Crucial)
	}
	assert.ElementsMatch(t, []string{"ToDo", "Ongoing", "Done", "Approved"}, names)
	boards.AssertExpectations(t)
}

func TestBoardHandler_CreateSquad_DuplicateName(t *testing.T) {
	r, boards := setupBoards(t)
	boards.On("CreateSquad", mock.Anything, "Alpha").Return(nil, repository.ErrDuplicateName)

	resp := doJSON(r, http.MethodPost, "/squads", jsonBody{"name": "Alpha"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestBoardHandler_DeleteSquad(t *testing.T) {
	r, boards := setupBoards(t)
	squadID := uuid.New()
	boards.On("DeleteSquad", mock.Anything, squadID).Return(nil)

	resp := doJSON(r, http.MethodDelete, "/squads/"+squadID.String(), nil)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	boards.AssertExpectations(t)
}

func TestBoardHandler_AddColumn_AlreadyOnBoard(t *testing.T) {
	// Arrange
	r, boards := setupBoards(t)
	squadID, boardID, statusID := uuid.New(), uuid.New(), uuid.New()
	boards.On("BoardBySquad", mock.Anything, squadID).Return(&model.Board{ID: boardID, SquadID: squadID}, nil)
	boards.On("AddColumn", mock.Anything, boardID, statusID).Return(nil, repository.ErrStatusAlreadyOnBoard)

	// Act
	resp := doJSON(r, http.MethodPost, "/squads/"+squadID.String()+"/columns", jsonBody{"status_id": statusID.String()})

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	boards.AssertExpectations(t)
}

func TestBoardHandler_ListColumns(t *testing.T) {
	r, boards := setupBoards(t)
	squad := seededSquad("Beta")
	boards.On("BoardBySquad", mock.Anything, squad.ID).Return(squad.Board, nil)
	boards.On("BindingsOfBoard", mock.Anything, squad.Board.ID).Return(squad.Board.Columns, nil)

	resp := doJSON(r, http.MethodGet, "/squads/"+squad.ID.String()+"/columns", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []handler.ColumnResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body, 4)
}
