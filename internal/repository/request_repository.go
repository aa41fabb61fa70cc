package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"squadhr/internal/model"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create files a new pending request for an existing user.
func (r *RequestRepository) Create(ctx context.Context, req *model.Request) error {
	req.Status = model.RequestPending
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.User{}, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return tx.Create(req).Error
	})
	return translateError(err)
}

func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	var req model.Request
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Request, error) {
	var requests []model.Request
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Find(&requests).Error
	return requests, err
}

// Resolve approves or rejects a pending request. Approval applies the
// request's counter mutation to its user in the same transaction as the
// status change; if the mutation cannot be applied the request stays
// Pending. A request is resolved at most once.
func (r *RequestRepository) Resolve(ctx context.Context, id uuid.UUID, status model.RequestStatus, reason string) (*model.Request, error) {
	if !status.Resolution() {
		return nil, fmt.Errorf("%w: cannot resolve a request as %q", ErrInvalidTransition, status)
	}

	var req model.Request
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != model.RequestPending {
			return ErrRequestResolved
		}

		if status == model.RequestApproved {
			if err := applyToUser(tx, req.UserID, req.RequestType); err != nil {
				return err
			}
		}

		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status": status,
			"reason": reason,
		}).Error; err != nil {
			return err
		}
		req.Status = status
		req.Reason = reason
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	log.Printf("request %s (%s) resolved as %s", req.ID, req.RequestType, req.Status)
	return &req, nil
}

func applyToUser(tx *gorm.DB, userID uuid.UUID, requestType model.RequestType) error {
	var user model.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := user.ApplyRequest(requestType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	return tx.Model(&user).Updates(user.Counters()).Error
}
