package model

import (
	"time"

	"github.com/google/uuid"
)

// EditableUserInfo is the part of the user profile that can be updated
// through the API. Pointer fields distinguish "not provided" (nil, field
// left untouched) from "clear this field" (pointer to empty string).
type EditableUserInfo struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Phone         *string `json:"phone"`
	PreferredCity *string `json:"preferred_city"`
	ResumeURL     *string `json:"resume_url"`
}

// User is gorm model for registered account data.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email         string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"type:text;not null" json:"-"`
	FirstName     string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName      string    `gorm:"type:varchar(50)" json:"last_name"`
	Phone         *string   `gorm:"type:varchar(50)" json:"phone"`
	PreferredCity *string   `gorm:"type:varchar(100)" json:"preferred_city"`
	ResumeURL     *string   `gorm:"type:varchar(1000)" json:"resume_url"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ApplyUpdate copies every provided (non-nil) field onto the user.
func (u *User) ApplyUpdate(info EditableUserInfo) {
	if info.FirstName != nil {
		u.FirstName = *info.FirstName
	}
	if info.LastName != nil {
		u.LastName = *info.LastName
	}
	if info.Phone != nil {
		u.Phone = info.Phone
	}
	if info.PreferredCity != nil {
		u.PreferredCity = info.PreferredCity
	}
	if info.ResumeURL != nil {
		u.ResumeURL = info.ResumeURL
	}
}
