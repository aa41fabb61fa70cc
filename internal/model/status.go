package model

import (
	"github.com/google/uuid"
)

// Names of the seeded statuses every board starts with.
const (
	StatusToDo     = "ToDo"
	StatusOngoing  = "Ongoing"
	StatusDone     = "Done"
	StatusApproved = "Approved"
)

// Status is a board column kind. Crucial statuses are seeded by migration
// and can be neither deleted nor duplicated.
type Status struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name    string    `gorm:"uniqueIndex;not null"`
	Crucial bool      `gorm:"not null;default:false"`
}

// CrucialStatusNames lists the seeded statuses in board order.
func CrucialStatusNames() []string {
	return []string{StatusToDo, StatusOngoing, StatusDone, StatusApproved}
}
