package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application has not been sent yet
	ApplicationStatusPending = "pending"
	// ApplicationStatusSent indicates that the application was delivered to the employer
	ApplicationStatusSent = "sent"
	// ApplicationStatusViewed indicates that the employer opened the application
	ApplicationStatusViewed = "viewed"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusInterview indicates that the employer requested an interview
	ApplicationStatusInterview = "interview"
)

// Application represents a job application record.
// Unique per (user, job) pair.
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job_application" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	JobID uint `gorm:"not null;uniqueIndex:idx_user_job_application" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"job"`

	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	AppliedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"applied_at"`
}
