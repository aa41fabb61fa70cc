package model

import (
	"time"

	"github.com/google/uuid"
)

// RecruitmentStatus is a step of the recruitment pipeline.
type RecruitmentStatus string

const (
	RecruitmentApplied               RecruitmentStatus = "APPLIED"
	RecruitmentHRApproved            RecruitmentStatus = "HR_APPROVED"
	RecruitmentOrchApproved          RecruitmentStatus = "ORCH_APPROVED"
	RecruitmentHRInterviewApproved   RecruitmentStatus = "HR_INTERVIEW_APPROVED"
	RecruitmentTechInterviewApproved RecruitmentStatus = "TECH_INTERVIEW_APPROVED"
	RecruitmentDone                  RecruitmentStatus = "DONE"
	RecruitmentRefused               RecruitmentStatus = "REFUSED"
)

// recruitmentPipeline maps each status to the statuses it may move to.
// Terminal statuses map to nothing.
var recruitmentPipeline = map[RecruitmentStatus][]RecruitmentStatus{
	RecruitmentApplied:               {RecruitmentHRApproved, RecruitmentRefused},
	RecruitmentHRApproved:            {RecruitmentOrchApproved, RecruitmentRefused},
	RecruitmentOrchApproved:          {RecruitmentHRInterviewApproved, RecruitmentRefused},
	RecruitmentHRInterviewApproved:   {RecruitmentTechInterviewApproved, RecruitmentRefused},
	RecruitmentTechInterviewApproved: {RecruitmentDone, RecruitmentRefused},
	RecruitmentDone:                  nil,
	RecruitmentRefused:               nil,
}

// RecruitmentStatuses returns every pipeline status in pipeline order.
func RecruitmentStatuses() []RecruitmentStatus {
	return []RecruitmentStatus{
		RecruitmentApplied,
		RecruitmentHRApproved,
		RecruitmentOrchApproved,
		RecruitmentHRInterviewApproved,
		RecruitmentTechInterviewApproved,
		RecruitmentDone,
		RecruitmentRefused,
	}
}

func (s RecruitmentStatus) Valid() bool {
	_, ok := recruitmentPipeline[s]
	return ok
}

func (s RecruitmentStatus) Terminal() bool {
	return s.Valid() && len(recruitmentPipeline[s]) == 0
}

// CanTransitionTo reports whether the pipeline allows moving from s to next.
func (s RecruitmentStatus) CanTransitionTo(next RecruitmentStatus) bool {
	for _, allowed := range recruitmentPipeline[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VacancyID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	CandidateID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Status      RecruitmentStatus `gorm:"not null;default:'APPLIED'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Feedback []RecruitmentFeedback `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// RecruitmentFeedback records why an application moved to Type. Rows are
// append-only.
type RecruitmentFeedback struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ApplicationID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type          RecruitmentStatus `gorm:"not null"`
	Text          string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}
