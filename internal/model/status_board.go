package model

import (
	"github.com/google/uuid"
)

// StatusBoard binds one Status to one Board. Tasks point at a StatusBoard,
// never at a Status directly.
type StatusBoard struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_status_boards_board_status"`
	StatusID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_status_boards_board_status"`

	Status Status `gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
}
