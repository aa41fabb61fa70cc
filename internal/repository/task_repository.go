package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"squadhr/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateInSquad binds task to the column of the squad's board that carries
// statusID and persists it. A status the board has no column for is
// reported as ErrBindingNotFound.
func (r *TaskRepository) CreateInSquad(ctx context.Context, squadID, statusID uuid.UUID, task *model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column model.StatusBoard
		err := tx.Joins("JOIN boards ON boards.id = status_boards.board_id").
			Where("boards.squad_id = ? AND status_boards.status_id = ?", squadID, statusID).
			First(&column).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBindingNotFound
			}
			return err
		}

		task.StatusBoardID = column.ID
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		task.StatusBoard = column
		return nil
	})
	return translateError(err)
}

// GetByID retrieves a task with its column and status
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).Preload("StatusBoard.Status").First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByBoard retrieves all tasks placed on any column of a board
func (r *TaskRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("StatusBoard.Status").
		Joins("JOIN status_boards ON status_boards.id = tasks.status_board_id").
		Where("status_boards.board_id = ?", boardID).
		Order("tasks.created_at").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Move rebinds a task to the column of its own board that carries statusID.
// The board is taken from the task's current column, so a status bound only
// on another squad's board is reported as ErrStatusNotFound.
func (r *TaskRepository) Move(ctx context.Context, taskID, statusID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		var current model.StatusBoard
		if err := tx.First(&current, "id = ?", task.StatusBoardID).Error; err != nil {
			return err
		}

		target, err := resolveBinding(tx, current.BoardID, statusID, ErrStatusNotFound)
		if err != nil {
			return err
		}

		if target.ID != task.StatusBoardID {
			if err := tx.Model(&task).Update("status_board_id", target.ID).Error; err != nil {
				return err
			}
			task.StatusBoardID = target.ID
		}
		task.StatusBoard = *target
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	log.Printf("task %s moved to column %s", task.ID, task.StatusBoardID)
	return &task, nil
}
