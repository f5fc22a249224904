// Package jobs provides HTTP handlers for job listing, lookup and search.
package jobs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	// searchScanCap bounds the superset fetched for the linear substring scan.
	searchScanCap = 500
)

// JobsController handles job related endpoints
type JobsController struct {
	DB *database.DBinstanceStruct
}

// NewJobsController creates a new instance of JobsController
func NewJobsController(db *database.DBinstanceStruct) *JobsController {
	return &JobsController{
		DB: db,
	}
}

func parseLimitOffset(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetJobs fetches a page of active jobs, optionally filtered by city and
// with the caller's already-swiped jobs excluded.
// @Summary List active jobs
// @Description city must be one of vancouver, toronto, calgary when present.
// @Description exclude_swiped=true removes jobs the bearer already swiped; it is ignored without a token.
// @Tags Jobs
// @Produce json
// @Param city query string false "Filter by city"
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Page offset"
// @Param exclude_swiped query boolean false "Exclude jobs the caller already swiped"
// @Success 200 {object} model.JobListResponse "Page of jobs"
// @Failure 400 {object} utilities.ErrorResponse "Unknown city"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobsController) GetJobs(c *gin.Context) {

	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	if city != "" && !model.IsValidCity(city) {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("City '%s' not supported", city)))
		return
	}

	limit, offset := parseLimitOffset(c)

	query := jc.DB.Model(&model.Job{}).Where("is_active")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to count jobs: ", err.Error())))
		return
	}

	var jobPage []model.Job
	if err := query.Order("posted_date DESC NULLS LAST, id DESC").
		Limit(limit).Offset(offset).
		Find(&jobPage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch jobs: ", err.Error())))
		return
	}

	// Swiped-job exclusion happens after the page fetch, so it is visible
	// in the page size. Requires a resolved identity.
	if strings.EqualFold(c.Query("exclude_swiped"), "true") {
		if user, err := utilities.ExtractUser(c); err == nil {
			var swipes []model.UserSwipe
			if err := jc.DB.Where("user_id = ?", user.ID).Find(&swipes).Error; err != nil {
				c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch swipe history: ", err.Error())))
				return
			}
			swiped := make(map[uint]bool, len(swipes))
			for _, s := range swipes {
				swiped[s.JobID] = true
			}
			filtered := jobPage[:0]
			for _, job := range jobPage {
				if !swiped[job.ID] {
					filtered = append(filtered, job)
				}
			}
			jobPage = filtered
		}
	}

	if jobPage == nil {
		jobPage = []model.Job{}
	}

	c.JSON(http.StatusOK, model.JobListResponse{
		Success: true,
		Jobs:    jobPage,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	})
}

// GetJobByID fetches one active job by id.
// @Summary Fetch one job
// @Tags Jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} model.JobResponse "The job"
// @Failure 404 {object} utilities.ErrorResponse "No active job with that id"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobsController) GetJobByID(c *gin.Context) {
	id := c.Param("id")

	var job model.Job
	if err := jc.DB.Where("id = ? AND is_active", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.Err("Job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch job: ", err.Error())))
		return
	}

	c.JSON(http.StatusOK, model.JobResponse{Success: true, Job: job})
}

// GetJobsByCity returns a city's jobs together with per-portal counts,
// the most recent scrape timestamp and the last scraper run.
// @Summary Jobs and scrape stats for one city
// @Tags Jobs
// @Produce json
// @Param city path string true "One of vancouver, toronto, calgary"
// @Success 200 {object} model.CityJobsResponse "Jobs plus source stats"
// @Failure 400 {object} utilities.ErrorResponse "Unknown city"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/city/{city} [get]
func (jc *JobsController) GetJobsByCity(c *gin.Context) {
	city := strings.ToLower(strings.TrimSpace(c.Param("city")))
	if !model.IsValidCity(city) {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("City '%s' not supported", city)))
		return
	}

	limit, offset := parseLimitOffset(c)

	var jobPage []model.Job
	if err := jc.DB.Where("city = ? AND is_active", city).
		Order("posted_date DESC NULLS LAST, id DESC").
		Limit(limit).Offset(offset).
		Find(&jobPage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch jobs: ", err.Error())))
		return
	}

	var total int64
	if err := jc.DB.Model(&model.Job{}).Where("city = ? AND is_active", city).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to count jobs: ", err.Error())))
		return
	}

	var sources []model.SourceStat
	if err := jc.DB.Model(&model.Job{}).
		Select("source_portal, count(*) as count, max(scraped_at) as last_scraped").
		Where("city = ? AND is_active", city).
		Group("source_portal").
		Scan(&sources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to aggregate sources: ", err.Error())))
		return
	}

	var lastRun *model.ScrapeLog
	var logRow model.ScrapeLog
	err := jc.DB.Where("city = ?", city).Order("created_at DESC").First(&logRow).Error
	switch {
	case err == nil:
		lastRun = &logRow
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No scraper run recorded yet; stats stay nil.
	default:
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch scrape log: ", err.Error())))
		return
	}

	if jobPage == nil {
		jobPage = []model.Job{}
	}

	c.JSON(http.StatusOK, model.CityJobsResponse{
		Success:   true,
		City:      city,
		Jobs:      jobPage,
		Sources:   sources,
		LastRun:   lastRun,
		JobsTotal: total,
	})
}

// SearchJobs does a best-effort substring search over title, company and
// description. Terms are split on whitespace and OR-ed; matching is a
// linear scan over a capped superset, not an indexed search.
// @Summary Substring search over jobs
// @Tags Jobs
// @Produce json
// @Param query path string true "Whitespace separated terms, any may match"
// @Param city query string false "Restrict to one city"
// @Param limit query int false "Maximum results, default 20, max 100"
// @Success 200 {object} model.JobListResponse "Matching jobs"
// @Failure 400 {object} utilities.ErrorResponse "Unknown city"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/search/{query} [get]
func (jc *JobsController) SearchJobs(c *gin.Context) {
	rawQuery := strings.TrimSpace(c.Param("query"))
	terms := strings.Fields(rawQuery)

	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	if city != "" && !model.IsValidCity(city) {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("City '%s' not supported", city)))
		return
	}

	limit, _ := parseLimitOffset(c)

	query := jc.DB.Where("is_active")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var superset []model.Job
	if err := query.Order("posted_date DESC NULLS LAST, id DESC").
		Limit(searchScanCap).
		Find(&superset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprint("Failed to fetch jobs: ", err.Error())))
		return
	}

	matches := []model.Job{}
	for i := range superset {
		if superset[i].MatchesQuery(terms) {
			matches = append(matches, superset[i])
			if len(matches) >= limit {
				break
			}
		}
	}

	c.JSON(http.StatusOK, model.JobListResponse{
		Success: true,
		Jobs:    matches,
		Total:   int64(len(matches)),
		HasMore: false,
	})
}
