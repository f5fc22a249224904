package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

type convertSwipesInfo struct {
	SessionID string `json:"session_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required,uuid"`
}

// ConvertSwipesHandler copies all anonymous swipes recorded under a session id
// into user swipes for the given user. The operation is idempotent: a swipe
// that already exists for the (user, job) pair is skipped, not an error.
// @Summary Migrate anonymous swipes to a registered user
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body convertSwipesInfo true "session id and target user id"
// @Success 200 {object} model.ConvertSwipesResponse "Conversion report"
// @Failure 400 {object} utilities.ErrorResponse "Missing session or user id"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/convert-swipes [post]
func (lh *LocalAuthHandler) ConvertSwipesHandler(c *gin.Context) {
	var info convertSwipesInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err("session_id and user_id must be provided"))
		return
	}

	userID, err := uuid.Parse(info.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err("user_id is not a valid uuid"))
		return
	}

	var user model.User
	if err := lh.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.Err("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Database error: %s", err.Error())))
		return
	}

	var anonSwipes []model.AnonymousSwipe
	if err := lh.DB.Where("session_id = ?", info.SessionID).Find(&anonSwipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to fetch anonymous swipes: %s", err.Error())))
		return
	}

	converted, skipped := 0, 0
	for _, anon := range anonSwipes {
		swipe := model.UserSwipe{
			UserID: user.ID,
			JobID:  anon.JobID,
			Action: anon.Action,
		}
		if err := lh.DB.Create(&swipe).Error; err != nil {
			// Unique (user, job) violation means the swipe already exists.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				skipped++
				continue
			}
			c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to convert swipe: %s", err.Error())))
			return
		}
		converted++
	}

	c.JSON(http.StatusOK, model.ConvertSwipesResponse{
		Success:   true,
		Converted: converted,
		Skipped:   skipped,
	})
}
