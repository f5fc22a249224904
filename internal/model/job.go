package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Supported cities. The scraper only targets these, and every
// city-filtered endpoint validates against this set.
var Cities = []string{"vancouver", "toronto", "calgary"}

// IsValidCity reports whether city (case-insensitive) is one of the supported cities.
func IsValidCity(city string) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

// Job is gorm model for job rows. Rows are created only by the external
// scraper; the API never mutates them except for deactivation.
type Job struct {
	ID              uint           `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Title           string         `gorm:"type:varchar(500);not null" json:"title"`
	Company         string         `gorm:"type:varchar(200)" json:"company"`
	Location        string         `gorm:"type:varchar(200)" json:"location"`
	City            string         `gorm:"type:varchar(100);index" json:"city"`
	Province        string         `gorm:"type:varchar(10)" json:"province"`
	Description     string         `gorm:"type:text" json:"description"`
	FullDescription string         `gorm:"type:text" json:"full_description"`
	JobURL          string         `gorm:"type:varchar(1000);uniqueIndex;not null" json:"job_url"`
	SourcePortal    string         `gorm:"type:varchar(50)" json:"source_portal"`
	ContactEmail    string         `gorm:"type:varchar(200)" json:"contact_email"`
	ContactPhone    string         `gorm:"type:varchar(50)" json:"contact_phone"`
	PostedDate      *time.Time     `gorm:"type:timestamp" json:"posted_date"`
	JobType         string         `gorm:"type:varchar(50)" json:"job_type"`
	ExperienceLevel string         `gorm:"type:varchar(50)" json:"experience_level"`
	Salary          string         `gorm:"type:varchar(200)" json:"salary"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	ScrapedAt       time.Time      `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"scraped_at"`
	CreatedAt       time.Time      `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// MatchesQuery reports whether any of the whitespace-separated terms
// appears (case-insensitive) in the job's title, company or description.
func (j *Job) MatchesQuery(terms []string) bool {
	haystack := strings.ToLower(j.Title + " " + j.Company + " " + j.Description)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
