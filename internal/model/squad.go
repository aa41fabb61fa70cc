package model

import (
	"time"

	"github.com/google/uuid"
)

// Squad is a team. It owns exactly one Board, created in the same transaction.
type Squad struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Board *Board `gorm:"foreignKey:SquadID;constraint:OnDelete:CASCADE"`
}
