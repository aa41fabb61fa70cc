package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error kinds. Every error a workflow method returns for a rejected request
// wraps exactly one of these; test with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrDuplicateName     = errors.New("duplicate name")
	ErrConflictInUse     = errors.New("in use")
	ErrValidationFailed  = errors.New("validation failed")
	ErrProtectedStatus   = errors.New("crucial status cannot be deleted")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrSquadNotFound       = fmt.Errorf("squad %w", ErrNotFound)
	ErrBoardNotFound       = fmt.Errorf("board %w", ErrNotFound)
	ErrStatusNotFound      = fmt.Errorf("status %w", ErrNotFound)
	ErrBindingNotFound     = fmt.Errorf("squad or status %w", ErrNotFound)
	ErrTaskNotFound        = fmt.Errorf("task %w", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	ErrRequestNotFound     = fmt.Errorf("request %w", ErrNotFound)

	ErrStatusNameTaken      = fmt.Errorf("status name: %w", ErrDuplicateName)
	ErrStatusAlreadyOnBoard = fmt.Errorf("status already on board: %w", ErrDuplicateName)
	ErrStatusInUse          = fmt.Errorf("status is bound to a board: %w", ErrConflictInUse)
	ErrRequestResolved      = fmt.Errorf("%w: request already resolved", ErrInvalidTransition)
)

// Postgres SQLSTATE codes translated by translateError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps constraint violations the pre-checks could not see
// (concurrent writers) onto the error kinds.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicateName, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrConflictInUse, pgErr.ConstraintName)
	}
	return err
}
