package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"squadhr/internal/handler"
	"squadhr/internal/middleware"
	"squadhr/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jsonBody = map[string]interface{}

var meID = uuid.MustParse("7f6c1c2e-2f0a-4d52-9d0b-3b8f2b6f9a11")

func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Next()
	}
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.RegisterValidators())
	r := gin.New()
	r.Use(withUser(meID))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

type MockStatusStore struct {
	mock.Mock
}

func (m *MockStatusStore) List(ctx context.Context) ([]model.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Status), args.Error(1)
}

func (m *MockStatusStore) Create(ctx context.Context, name string) (*model.Status, error) {
	args := m.Called(ctx, name)
	s, _ := args.Get(0).(*model.Status)
	return s, args.Error(1)
}

func (m *MockStatusStore) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Status, error) {
	args := m.Called(ctx, id, name)
	s, _ := args.Get(0).(*model.Status)
	return s, args.Error(1)
}

func (m *MockStatusStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockBoardStore struct {
	mock.Mock
}

func (m *MockBoardStore) CreateSquad(ctx context.Context, name string) (*model.Squad, error) {
	args := m.Called(ctx, name)
	s, _ := args.Get(0).(*model.Squad)
	return s, args.Error(1)
}

func (m *MockBoardStore) GetSquad(ctx context.Context, id uuid.UUID) (*model.Squad, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.Squad)
	return s, args.Error(1)
}

func (m *MockBoardStore) DeleteSquad(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBoardStore) BoardBySquad(ctx context.Context, squadID uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, squadID)
	b, _ := args.Get(0).(*model.Board)
	return b, args.Error(1)
}

func (m *MockBoardStore) BindingsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.StatusBoard, error) {
	args := m.Called(ctx, boardID)
	cols, _ := args.Get(0).([]model.StatusBoard)
	return cols, args.Error(1)
}

func (m *MockBoardStore) AddColumn(ctx context.Context, boardID, statusID uuid.UUID) (*model.StatusBoard, error) {
	args := m.Called(ctx, boardID, statusID)
	col, _ := args.Get(0).(*model.StatusBoard)
	return col, args.Error(1)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) CreateInSquad(ctx context.Context, squadID, statusID uuid.UUID, task *model.Task) error {
	return m.Called(ctx, squadID, statusID, task).Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Task)
	return t, args.Error(1)
}

func (m *MockTaskStore) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, boardID)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) Move(ctx context.Context, taskID, statusID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, taskID, statusID)
	t, _ := args.Get(0).(*model.Task)
	return t, args.Error(1)
}

type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Create(ctx context.Context, app *model.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Application)
	return a, args.Error(1)
}

func (m *MockApplicationStore) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Application, error) {
	args := m.Called(ctx, vacancyID)
	apps, _ := args.Get(0).([]model.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationStore) Transition(ctx context.Context, id uuid.UUID, next model.RecruitmentStatus, reason string) (*model.Application, error) {
	args := m.Called(ctx, id, next, reason)
	a, _ := args.Get(0).(*model.Application)
	return a, args.Error(1)
}

type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(ctx context.Context, req *model.Request) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequestStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Request, error) {
	args := m.Called(ctx, userID)
	reqs, _ := args.Get(0).([]model.Request)
	return reqs, args.Error(1)
}

func (m *MockRequestStore) Resolve(ctx context.Context, id uuid.UUID, status model.RequestStatus, reason string) (*model.Request, error) {
	args := m.Called(ctx, id, status, reason)
	r, _ := args.Get(0).(*model.Request)
	return r, args.Error(1)
}
