package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GsStatus is the membership state of a user inside the programme.
type GsStatus string

const (
	GsStatusActive GsStatus = "ACTIVE"
	GsStatusFreeze GsStatus = "FREEZE"
)

// ErrCounterExhausted is returned when an approved request would drive a
// resource counter below zero.
var ErrCounterExhausted = errors.New("counter would drop below zero")

type User struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email                string    `gorm:"uniqueIndex;not null"`
	HashedPassword       string    `gorm:"not null"`
	Name                 string    `gorm:"not null"`
	GsStatus             GsStatus  `gorm:"not null;default:'ACTIVE'"`
	FreezeCardsCount     int       `gorm:"not null;default:0"`
	ProtectionCardsCount int       `gorm:"not null;default:0"`
	HeartsCount          int       `gorm:"not null;default:0"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

// ApplyRequest performs the single counter mutation an approved request of
// type t carries. The user is left untouched when an error is returned.
func (u *User) ApplyRequest(t RequestType) error {
	switch t {
	case RequestFreeze:
		if u.FreezeCardsCount <= 0 {
			return fmt.Errorf("freeze cards: %w", ErrCounterExhausted)
		}
		u.FreezeCardsCount--
		u.GsStatus = GsStatusFreeze
	case RequestProtection:
		if u.ProtectionCardsCount <= 0 {
			return fmt.Errorf("protection cards: %w", ErrCounterExhausted)
		}
		u.ProtectionCardsCount--
	case RequestHeartAddition:
		u.HeartsCount++
	case RequestHeartDeletion:
		if u.HeartsCount <= 0 {
			return fmt.Errorf("hearts: %w", ErrCounterExhausted)
		}
		u.HeartsCount--
	default:
		return fmt.Errorf("unknown request type %q", t)
	}
	return nil
}

// Counters returns the columns ApplyRequest may change, keyed by column name.
func (u *User) Counters() map[string]interface{} {
	return map[string]interface{}{
		"gs_status":              u.GsStatus,
		"freeze_cards_count":     u.FreezeCardsCount,
		"protection_cards_count": u.ProtectionCardsCount,
		"hearts_count":           u.HeartsCount,
	}
}
