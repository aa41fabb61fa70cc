package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestType string

const (
	RequestFreeze        RequestType = "Freeze"
	RequestProtection    RequestType = "Protection"
	RequestHeartAddition RequestType = "HeartAddition"
	RequestHeartDeletion RequestType = "HeartDeletion"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestFreeze, RequestProtection, RequestHeartAddition, RequestHeartDeletion:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// Resolution reports whether s is a status a pending request may be resolved to.
func (s RequestStatus) Resolution() bool {
	return s == RequestApproved || s == RequestRejected
}

// Request is a member's ask for a resource-affecting action. It is created
// Pending and resolved exactly once.
type Request struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	RequestType RequestType   `gorm:"not null"`
	Status      RequestStatus `gorm:"not null;default:'Pending'"`
	Reason      string
	Date        time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}
