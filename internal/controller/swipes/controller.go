// Package swipes provides HTTP handlers for recording and reading swipe decisions.
package swipes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

// SwipesController handles swipe related endpoints
type SwipesController struct {
	DB *database.DBinstanceStruct
}

// NewSwipesController creates a new instance of SwipesController
func NewSwipesController(db *database.DBinstanceStruct) *SwipesController {
	return &SwipesController{
		DB: db,
	}
}

type anonymousSwipeInfo struct {
	SessionID string `json:"session_id" binding:"required"`
	JobID     uint   `json:"job_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=apply pass"`
}

type userSwipeInfo struct {
	JobID  uint   `json:"job_id" binding:"required"`
	Action string `json:"action" binding:"required,oneof=apply pass save"`
}

// AnonymousSwipeHandler records a swipe made before signup.
// @Summary Record an anonymous swipe
// @Description session_id is chosen by the client; action is apply or pass
// @Tags Swipes
// @Accept json
// @Produce json
// @Param Swipe body anonymousSwipeInfo true "Swipe to record"
// @Success 201 {object} model.AnonymousSwipeResponse "Recorded swipe"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body or unknown job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /swipes/anonymous [post]
func (sc *SwipesController) AnonymousSwipeHandler(c *gin.Context) {
	var info anonymousSwipeInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid swipe data: %s", err.Error())))
		return
	}

	swipe := model.AnonymousSwipe{
		SessionID: info.SessionID,
		JobID:     info.JobID,
		Action:    info.Action,
		IPAddress: c.ClientIP(),
	}

	if err := sc.DB.Create(&swipe).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid job id: %d", info.JobID)))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to record swipe: %s", err.Error())))
		return
	}

	c.JSON(http.StatusCreated, model.AnonymousSwipeResponse{Success: true, Swipe: swipe})
}

// UserSwipeHandler records a swipe for the authenticated user. An "apply"
// swipe also creates a pending application when none exists yet.
// @Summary Record an identified swipe
// @Tags Swipes
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Swipe body userSwipeInfo true "Swipe to record, action one of apply, pass, save"
// @Success 201 {object} model.SwipeResponse "Recorded swipe"
// @Failure 400 {object} utilities.ErrorResponse "Invalid body or unknown job"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 409 {object} utilities.ErrorResponse "Job already swiped by this user"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /swipes/user [post]
func (sc *SwipesController) UserSwipeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var info userSwipeInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid swipe data: %s", err.Error())))
		return
	}

	swipe := model.UserSwipe{
		UserID: user.ID,
		JobID:  info.JobID,
		Action: info.Action,
	}

	if err := sc.DB.Create(&swipe).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				c.JSON(http.StatusConflict, utilities.Err("You have already swiped this job"))
				return
			case "23503":
				c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid job id: %d", info.JobID)))
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to record swipe: %s", err.Error())))
		return
	}

	if info.Action == model.ActionApply {
		application := model.Application{
			UserID: user.ID,
			JobID:  info.JobID,
			Status: model.ApplicationStatusPending,
		}
		if err := sc.DB.Create(&application).Error; err != nil {
			// Already applied earlier; the swipe itself still stands.
			var pgErr *pgconn.PgError
			if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
				c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to create application: %s", err.Error())))
				return
			}
		}
	}

	c.JSON(http.StatusCreated, model.SwipeResponse{Success: true, Swipe: swipe})
}

// SwipeHistory lists the user's swipes, newest first.
// @Summary Swipe history for the authenticated user
// @Tags Swipes
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.SwipeHistoryResponse "All swipes"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /swipes/history [get]
func (sc *SwipesController) SwipeHistory(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var swipes []model.UserSwipe
	if err := sc.DB.Where("user_id = ?", user.ID).
		Order("swiped_at DESC, id DESC").
		Find(&swipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch swipes: %s", err.Error())))
		return
	}

	c.JSON(http.StatusOK, model.SwipeHistoryResponse{Success: true, Swipes: swipes})
}

// LikedJobs lists the jobs the user swiped "apply" on.
// @Summary Jobs the user liked
// @Tags Swipes
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.LikedJobsResponse "Liked jobs"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /swipes/liked [get]
func (sc *SwipesController) LikedJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var swipes []model.UserSwipe
	if err := sc.DB.Preload("Job").
		Where("user_id = ? AND action = ?", user.ID, model.ActionApply).
		Order("swiped_at DESC, id DESC").
		Find(&swipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch swipes: %s", err.Error())))
		return
	}

	liked := make([]model.Job, 0, len(swipes))
	for _, s := range swipes {
		liked = append(liked, s.Job)
	}

	c.JSON(http.StatusOK, model.LikedJobsResponse{Success: true, Jobs: liked})
}

// SwipeStats summarizes the user's swipe activity. "Swiped today" compares
// calendar dates in the server's local timezone.
// @Summary Swipe activity summary
// @Tags Swipes
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.SwipeStatsResponse "Totals per action plus today's count"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /swipes/stats [get]
func (sc *SwipesController) SwipeStats(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	var swipes []model.UserSwipe
	if err := sc.DB.Where("user_id = ?", user.ID).Find(&swipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch swipes: %s", err.Error())))
		return
	}

	byAction := map[string]int{
		model.ActionApply: 0,
		model.ActionPass:  0,
		model.ActionSave:  0,
	}
	today := time.Now().Format("2006-01-02")
	swipedToday := 0

	for _, s := range swipes {
		byAction[s.Action]++
		if s.SwipedAt.Local().Format("2006-01-02") == today {
			swipedToday++
		}
	}

	c.JSON(http.StatusOK, model.SwipeStatsResponse{
		Success:     true,
		Total:       len(swipes),
		ByAction:    byAction,
		SwipedToday: swipedToday,
	})
}
