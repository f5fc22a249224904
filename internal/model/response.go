package model

import "time"

// AuthResponse holds the response data for login, signup and verify.
type AuthResponse struct {
	Success     bool   `json:"success"`
	User        User   `json:"user"`
	AccessToken string `json:"token,omitempty"`
}

// JobListResponse is the paginated response for job listing.
type JobListResponse struct {
	Success bool  `json:"success"`
	Jobs    []Job `json:"jobs"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Success bool `json:"success"`
	Job     Job  `json:"job"`
}

// SourceStat is one per-portal aggregate for a city.
type SourceStat struct {
	SourcePortal string    `json:"source_portal"`
	Count        int64     `json:"count"`
	LastScraped  time.Time `json:"last_scraped"`
}

// CityJobsResponse holds jobs for one city together with scrape stats.
type CityJobsResponse struct {
	Success   bool         `json:"success"`
	City      string       `json:"city"`
	Jobs      []Job        `json:"jobs"`
	Sources   []SourceStat `json:"sources"`
	LastRun   *ScrapeLog   `json:"last_run,omitempty"`
	JobsTotal int64        `json:"jobs_total"`
}

// SwipeResponse wraps a recorded swipe.
type SwipeResponse struct {
	Success bool      `json:"success"`
	Swipe   UserSwipe `json:"swipe"`
}

// AnonymousSwipeResponse wraps a recorded anonymous swipe.
type AnonymousSwipeResponse struct {
	Success bool           `json:"success"`
	Swipe   AnonymousSwipe `json:"swipe"`
}

// SwipeHistoryResponse lists a user's swipes.
type SwipeHistoryResponse struct {
	Success bool        `json:"success"`
	Swipes  []UserSwipe `json:"swipes"`
}

// LikedJobsResponse lists jobs the user swiped "apply" on.
type LikedJobsResponse struct {
	Success bool  `json:"success"`
	Jobs    []Job `json:"jobs"`
}

// SwipeStatsResponse summarizes a user's swipe activity.
type SwipeStatsResponse struct {
	Success     bool           `json:"success"`
	Total       int            `json:"total"`
	ByAction    map[string]int `json:"by_action"`
	SwipedToday int            `json:"swiped_today"`
}

// ApplicationListResponse lists a user's applications.
type ApplicationListResponse struct {
	Success      bool          `json:"success"`
	Applications []Application `json:"applications"`
}

// ApplicationResponse wraps a single created application.
type ApplicationResponse struct {
	Success     bool        `json:"success"`
	Application Application `json:"application"`
}

// BulkApplyError is one failed item of a bulk-apply batch.
type BulkApplyError struct {
	JobID uint   `json:"job_id"`
	Error string `json:"error"`
}

// BulkApplyResponse reports the outcome of a bulk-apply batch.
// Per-item failures never abort the batch.
type BulkApplyResponse struct {
	Success bool             `json:"success"`
	Applied int              `json:"applied"`
	Failed  int              `json:"failed"`
	Errors  []BulkApplyError `json:"errors"`
}

// ConvertSwipesResponse reports how many anonymous swipes were migrated.
type ConvertSwipesResponse struct {
	Success   bool `json:"success"`
	Converted int  `json:"converted"`
	Skipped   int  `json:"skipped"`
}
