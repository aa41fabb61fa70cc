package repository_test

import (
	"context"
	"testing"

	"squadhr/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusColumns = []string{"id", "name", "crucial"}

func TestStatusRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)
	statusID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "statuses" WHERE name = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "statuses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(statusID.String()))
	mock.ExpectCommit()

	// Act
	status, err := repo.Create(context.Background(), "Review")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, statusID, status.ID)
	assert.Equal(t, "Review", status.Name)
	assert.False(t, status.Crucial)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Create_DuplicateName(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "statuses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	status, err := repo.Create(context.Background(), "ToDo")

	assert.ErrorIs(t, err, repository.ErrDuplicateName)
	assert.Nil(t, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Create_ConcurrentDuplicate(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "statuses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "statuses"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_statuses_name"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), "Review")

	assert.ErrorIs(t, err, repository.ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Rename_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statuses" WHERE id = `).
		WillReturnRows(sqlmock.NewRows(statusColumns))
	mock.ExpectRollback()

	_, err := repo.Rename(context.Background(), uuid.New(), "Review")

	assert.ErrorIs(t, err, repository.ErrStatusNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Delete_Crucial(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)
	statusID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statuses" WHERE id = `).
		WillReturnRows(sqlmock.NewRows(statusColumns).AddRow(statusID.String(), "ToDo", true))
	mock.ExpectRollback()

	// Act
	err := repo.Delete(context.Background(), statusID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrProtectedStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Delete_InUse(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)
	statusID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statuses" WHERE id = `).
		WillReturnRows(sqlmock.NewRows(statusColumns).AddRow(statusID.String(), "Review", false))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "status_boards" WHERE status_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), statusID)

	assert.ErrorIs(t, err, repository.ErrConflictInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewStatusRepository(gormDB)
	statusID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statuses" WHERE id = `).
		WillReturnRows(sqlmock.NewRows(statusColumns).AddRow(statusID.String(), "Review", false))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "status_boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM "statuses" WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), statusID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
