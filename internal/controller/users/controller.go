// Package users provides HTTP handlers for profile and application operations.
package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

// UsersController handles profile and application endpoints
type UsersController struct {
	DB *database.DBinstanceStruct
}

// NewUsersController creates a new instance of UsersController
func NewUsersController(db *database.DBinstanceStruct) *UsersController {
	return &UsersController{
		DB: db,
	}
}

// GetProfile returns the authenticated user's profile.
// @Summary Read own profile
// @Tags Users
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.AuthResponse "Profile without password hash"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /users/me [get]
func (uc *UsersController) GetProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{Success: true, User: user})
}

// UpdateProfile partially updates the profile. Fields absent from the body
// stay untouched; fields present with an empty value are cleared.
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.EditableUserInfo true "Only provided fields change"
// @Success 200 {object} model.AuthResponse "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body or unknown city"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/me [put]
func (uc *UsersController) UpdateProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var info model.EditableUserInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid request body: %s", err.Error())))
		return
	}

	if info.PreferredCity != nil && *info.PreferredCity != "" {
		normalized := strings.ToLower(strings.TrimSpace(*info.PreferredCity))
		if !model.IsValidCity(normalized) {
			c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("City '%s' not supported", *info.PreferredCity)))
			return
		}
		info.PreferredCity = &normalized
	}

	user.ApplyUpdate(info)

	if err := uc.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to update profile: %s", err.Error())))
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{Success: true, User: user})
}

// GetApplications lists the user's applications with their jobs.
// @Summary List own applications
// @Tags Users
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.ApplicationListResponse "Applications, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/applications [get]
func (uc *UsersController) GetApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var applications []model.Application
	if err := uc.DB.Preload("Job").
		Where("user_id = ?", user.ID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch applications: %s", err.Error())))
		return
	}

	c.JSON(http.StatusOK, model.ApplicationListResponse{Success: true, Applications: applications})
}

type applyInfo struct {
	CoverLetter string `json:"cover_letter"`
}

// ApplyHandler creates one application for the given job.
// @Summary Apply to one job
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job_id path int true "Job id"
// @Param Body body applyInfo false "Optional cover letter"
// @Success 201 {object} model.ApplicationResponse "Created application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "No active job with that id"
// @Failure 409 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/apply/{job_id} [post]
func (uc *UsersController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err("job_id must be a positive integer"))
		return
	}

	var info applyInfo
	// Body is optional for a plain apply.
	_ = c.ShouldBindJSON(&info)

	var job model.Job
	if err := uc.DB.Where("id = ? AND is_active", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.Err("Job not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch job: %s", err.Error())))
		return
	}

	// Duplicate check before insert keeps the error message friendly;
	// the unique index still backstops races.
	var existing model.Application
	if err := uc.DB.Where("user_id = ? AND job_id = ?", user.ID, jobID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, utilities.Err("You have already applied to this job"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.Err("Failed to check existing application"))
		return
	}

	application := model.Application{
		UserID:      user.ID,
		JobID:       uint(jobID),
		Status:      model.ApplicationStatusPending,
		CoverLetter: info.CoverLetter,
	}
	if err := uc.DB.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, utilities.Err("You have already applied to this job"))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to create application: %s", err.Error())))
		return
	}
	application.Job = job

	c.JSON(http.StatusCreated, model.ApplicationResponse{Success: true, Application: application})
}

type bulkApplyInfo struct {
	JobIDs      []uint `json:"job_ids" binding:"required,min=1"`
	CoverLetter string `json:"cover_letter"`
}

// BulkApplyHandler applies to every job id in the batch. Items fail
// independently; a duplicate or unknown job never aborts the rest.
// @Summary Apply to many jobs at once
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Body body bulkApplyInfo true "Job ids and optional shared cover letter"
// @Success 200 {object} model.BulkApplyResponse "Per-item outcome counts"
// @Failure 400 {object} utilities.ErrorResponse "Missing job_ids"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /users/apply-bulk [post]
func (uc *UsersController) BulkApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var info bulkApplyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err("job_ids must be a non-empty array"))
		return
	}

	applied := 0
	failures := []model.BulkApplyError{}

	for _, jobID := range info.JobIDs {
		var job model.Job
		if err := uc.DB.Where("id = ? AND is_active", jobID).First(&job).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				failures = append(failures, model.BulkApplyError{JobID: jobID, Error: "Job not found"})
			} else {
				failures = append(failures, model.BulkApplyError{JobID: jobID, Error: err.Error()})
			}
			continue
		}

		application := model.Application{
			UserID:      user.ID,
			JobID:       jobID,
			Status:      model.ApplicationStatusPending,
			CoverLetter: info.CoverLetter,
		}
		if err := uc.DB.Create(&application).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				failures = append(failures, model.BulkApplyError{JobID: jobID, Error: "Already applied"})
			} else {
				failures = append(failures, model.BulkApplyError{JobID: jobID, Error: err.Error()})
			}
			continue
		}
		applied++
	}

	c.JSON(http.StatusOK, model.BulkApplyResponse{
		Success: true,
		Applied: applied,
		Failed:  len(failures),
		Errors:  failures,
	})
}
