package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"squadhr/internal/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create persists a new application. Every application enters the pipeline
// as APPLIED regardless of what the caller set.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	app.Status = model.RecruitmentApplied
	app.Feedback = nil
	return translateError(r.db.WithContext(ctx).Create(app).Error)
}

// GetByID retrieves an application with its feedback trail, oldest first
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Where("vacancy_id = ?", vacancyID).
		Order("created_at").
		Find(&apps).Error
	return apps, err
}

// Transition moves an application to next and records reason as feedback.
// The current status is re-read under a row lock inside the transaction, so
// concurrent transitions on one application serialize and the persisted
// status always matches the newest feedback row. The returned application
// carries only the feedback row this call created.
func (r *ApplicationRepository) Transition(ctx context.Context, id uuid.UUID, next model.RecruitmentStatus, reason string) (*model.Application, error) {
	var app model.Application
	var previous model.RecruitmentStatus
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		previous = app.Status
		if !previous.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, next)
		}

		if err := tx.Model(&app).Update("status", next).Error; err != nil {
			return err
		}

		feedback := model.RecruitmentFeedback{
			ApplicationID: app.ID,
			Type:          next,
			Text:          reason,
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}

		app.Status = next
		app.Feedback = []model.RecruitmentFeedback{feedback}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	log.Printf("application %s: %s -> %s", app.ID, previous, app.Status)
	return &app, nil
}
