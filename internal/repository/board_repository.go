package repository

import (
	"context"
	"errors"

	"squadhr/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errNoCrucialStatuses = errors.New("status catalog has no crucial statuses")

// BoardRepository owns squads, their boards and the status bindings
// (columns) of each board.
type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// CreateSquad persists a squad together with its board and one column per
// crucial status, all in one transaction.
func (r *BoardRepository) CreateSquad(ctx context.Context, name string) (*model.Squad, error) {
	squad := &model.Squad{Name: name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(squad).Error; err != nil {
			return err
		}

		board := &model.Board{SquadID: squad.ID}
		if err := tx.Create(board).Error; err != nil {
			return err
		}

		var crucial []model.Status
		if err := tx.Where("crucial = ?", true).Order("name").Find(&crucial).Error; err != nil {
			return err
		}
		if len(crucial) == 0 {
			return errNoCrucialStatuses
		}

		columns := make([]model.StatusBoard, len(crucial))
		for i, status := range crucial {
			columns[i] = model.StatusBoard{BoardID: board.ID, StatusID: status.ID}
		}
		if err := tx.Create(&columns).Error; err != nil {
			return err
		}
		for i := range columns {
			columns[i].Status = crucial[i]
		}

		board.Columns = columns
		squad.Board = board
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return squad, nil
}

func (r *BoardRepository) GetSquad(ctx context.Context, id uuid.UUID) (*model.Squad, error) {
	var squad model.Squad
	err := r.db.WithContext(ctx).
		Preload("Board.Columns.Status").
		First(&squad, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSquadNotFound
		}
		return nil, err
	}
	return &squad, nil
}

// DeleteSquad removes the squad; its board, columns and their tasks go with
// it through ON DELETE CASCADE.
func (r *BoardRepository) DeleteSquad(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Squad{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSquadNotFound
	}
	return nil
}

func (r *BoardRepository) BoardBySquad(ctx context.Context, squadID uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).First(&board, "squad_id = ?", squadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSquadNotFound
		}
		return nil, err
	}
	return &board, nil
}

// ResolveBinding returns the column of boardID that carries statusID.
func (r *BoardRepository) ResolveBinding(ctx context.Context, boardID, statusID uuid.UUID) (*model.StatusBoard, error) {
	return resolveBinding(r.db.WithContext(ctx), boardID, statusID, ErrBindingNotFound)
}

// BindingsOfBoard enumerates the columns of a board.
func (r *BoardRepository) BindingsOfBoard(ctx context.Context, boardID uuid.UUID) ([]model.StatusBoard, error) {
	db := r.db.WithContext(ctx)
	if err := db.Select("id").First(&model.Board{}, "id = ?", boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	var columns []model.StatusBoard
	err := db.Preload("Status").Where("board_id = ?", boardID).Find(&columns).Error
	return columns, err
}

// AddColumn binds an existing status to a board.
func (r *BoardRepository) AddColumn(ctx context.Context, boardID, statusID uuid.UUID) (*model.StatusBoard, error) {
	var column *model.StatusBoard
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Board{}, "id = ?", boardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}
		status, err := findStatus(tx, statusID)
		if err != nil {
			return err
		}

		_, err = resolveBinding(tx, boardID, statusID, ErrBindingNotFound)
		if err == nil {
			return ErrStatusAlreadyOnBoard
		}
		if !errors.Is(err, ErrBindingNotFound) {
			return err
		}

		column = &model.StatusBoard{BoardID: boardID, StatusID: statusID}
		if err := tx.Create(column).Error; err != nil {
			return err
		}
		column.Status = *status
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return column, nil
}

// resolveBinding looks the (board, status) pair up in a single query and
// returns notFound when the board has no such column.
func resolveBinding(tx *gorm.DB, boardID, statusID uuid.UUID, notFound error) (*model.StatusBoard, error) {
	var column model.StatusBoard
	err := tx.Where("board_id = ? AND status_id = ?", boardID, statusID).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return &column, nil
}
