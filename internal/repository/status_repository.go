package repository

import (
	"context"
	"errors"

	"squadhr/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// List returns the catalog with crucial statuses first.
func (r *StatusRepository) List(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	err := r.db.WithContext(ctx).Order("crucial DESC, name").Find(&statuses).Error
	return statuses, err
}

func (r *StatusRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Status, error) {
	return findStatus(r.db.WithContext(ctx), id)
}

// Create adds a non-crucial status. Names are unique, compared exactly.
func (r *StatusRepository) Create(ctx context.Context, name string) (*model.Status, error) {
	status := &model.Status{Name: name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := statusNameTaken(tx, name, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return ErrStatusNameTaken
		}
		return tx.Create(status).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return status, nil
}

func (r *StatusRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Status, error) {
	var status *model.Status
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		status, err = findStatus(tx, id)
		if err != nil {
			return err
		}
		taken, err := statusNameTaken(tx, name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrStatusNameTaken
		}
		if err := tx.Model(status).Update("name", name).Error; err != nil {
			return err
		}
		status.Name = name
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return status, nil
}

// Delete removes a status that is neither crucial nor bound to any board.
func (r *StatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		status, err := findStatus(tx, id)
		if err != nil {
			return err
		}
		if status.Crucial {
			return ErrProtectedStatus
		}

		var bindings int64
		if err := tx.Model(&model.StatusBoard{}).Where("status_id = ?", id).Count(&bindings).Error; err != nil {
			return err
		}
		if bindings > 0 {
			return ErrStatusInUse
		}

		return tx.Delete(&model.Status{}, "id = ?", id).Error
	})
	return translateError(err)
}

func findStatus(tx *gorm.DB, id uuid.UUID) (*model.Status, error) {
	var status model.Status
	if err := tx.First(&status, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func statusNameTaken(tx *gorm.DB, name string, except uuid.UUID) (bool, error) {
	var count int64
	q := tx.Model(&model.Status{}).Where("name = ?", name)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
