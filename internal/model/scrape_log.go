package model

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeLog is one run of the external scraper against a portal.
// Written by the scraper process; the API only reads it for stats.
type ScrapeLog struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PortalName        string     `gorm:"type:varchar(100)" json:"portal_name"`
	City              string     `gorm:"type:varchar(100);index" json:"city"`
	ScrapeStartedAt   *time.Time `gorm:"type:timestamp" json:"scrape_started_at"`
	ScrapeCompletedAt *time.Time `gorm:"type:timestamp" json:"scrape_completed_at"`
	JobsFound         int        `json:"jobs_found"`
	JobsAdded         int        `json:"jobs_added"`
	Status            string     `gorm:"type:varchar(50)" json:"status"`
	ErrorMessage      string     `gorm:"type:text" json:"error_message"`
	CreatedAt         time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
