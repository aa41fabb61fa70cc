package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title         string    `gorm:"not null"`
	Description   string
	Priority      int `gorm:"not null;default:0"`
	Difficulty    int `gorm:"not null;default:0"`
	Deadline      *time.Time
	StatusBoardID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedByID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	StatusBoard StatusBoard `gorm:"foreignKey:StatusBoardID;constraint:OnDelete:CASCADE"`
}
