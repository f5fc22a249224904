package model

import (
	"time"

	"github.com/google/uuid"
)

// Swipe action constants
var (
	// ActionApply indicates the user wants to apply to the job
	ActionApply = "apply"
	// ActionPass indicates the user rejected the job
	ActionPass = "pass"
	// ActionSave indicates the user saved the job for later
	ActionSave = "save"
)

// UserSwipe records one swipe decision by a registered user.
// A user may swipe a given job only once.
type UserSwipe struct {
	ID     uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_job_swipe" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	JobID uint `gorm:"not null;uniqueIndex:idx_user_job_swipe" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	Action   string    `gorm:"type:varchar(10);not null" json:"action"`
	SwipedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"swiped_at"`
}

// AnonymousSwipe records a swipe made before signup, keyed by a
// client-chosen session id. Convertible to UserSwipe after signup.
type AnonymousSwipe struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;->" json:"id"`
	SessionID string `gorm:"type:varchar(100);not null;index" json:"session_id"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	Action    string    `gorm:"type:varchar(10);not null" json:"action"`
	IPAddress string    `gorm:"type:varchar(50)" json:"ip_address"`
	SwipedAt  time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"swiped_at"`
}
