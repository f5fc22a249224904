package swipes

import (
	"context"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sudharson99/swipeHire/internal/auth"
	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/middleware"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown test database: %v", err)
		}
	}
	os.Exit(code)
}

func swipesRouter(db *database.DBinstanceStruct) *gin.Engine {
	r := gin.New()
	sc := NewSwipesController(db)
	r.POST("/api/swipes/anonymous", sc.AnonymousSwipeHandler)

	authed := r.Group("/api/swipes", middleware.RequireAuth(db))
	authed.POST("user", sc.UserSwipeHandler)
	authed.GET("history", sc.SwipeHistory)
	authed.GET("liked", sc.LikedJobs)
	authed.GET("stats", sc.SwipeStats)
	return r
}

func TestAnonymousSwipe(t *testing.T) {
	r := swipesRouter(testDB)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"session_id": "anon-session-1",
		"job_id":     database.TestTorontoJobs[0].ID,
		"action":     model.ActionApply,
	}, "", r, "/api/swipes/anonymous", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, resp["success"])

	swipe := resp["swipe"].(map[string]interface{})
	assert.Equal(t, "anon-session-1", swipe["session_id"])
	assert.Equal(t, model.ActionApply, swipe["action"])
}

func TestAnonymousSwipeRejectsSaveAction(t *testing.T) {
	r := swipesRouter(testDB)

	// Anonymous visitors can only apply or pass.
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"session_id": "anon-session-1",
		"job_id":     database.TestTorontoJobs[0].ID,
		"action":     model.ActionSave,
	}, "", r, "/api/swipes/anonymous", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])
}

func TestAnonymousSwipeUnknownJob(t *testing.T) {
	r := swipesRouter(testDB)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"session_id": "anon-session-2",
		"job_id":     999999,
		"action":     model.ActionPass,
	}, "", r, "/api/swipes/anonymous", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Invalid job id")
}

func TestUserSwipeFlow(t *testing.T) {
	r := swipesRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestUser1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	t.Run("apply swipe creates pending application", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"job_id": database.TestTorontoJobs[0].ID,
			"action": model.ActionApply,
		}, token, r, "/api/swipes/user", http.MethodPost)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, resp["success"])

		var application model.Application
		err := testDB.Where("user_id = ? AND job_id = ?", database.TestUser1.ID, database.TestTorontoJobs[0].ID).
			First(&application).Error
		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusPending, application.Status)
	})

	t.Run("second swipe on the same job conflicts", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{
			"job_id": database.TestTorontoJobs[0].ID,
			"action": model.ActionPass,
		}, token, r, "/api/swipes/user", http.MethodPost)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "You have already swiped this job", resp["error"])

		var count int64
		assert.NoError(t, testDB.Model(&model.UserSwipe{}).
			Where("user_id = ?", database.TestUser1.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("pass and save swipes", func(t *testing.T) {
		rec, _ := testutil.MakeJSONRequest(gin.H{
			"job_id": database.TestTorontoJobs[1].ID,
			"action": model.ActionPass,
		}, token, r, "/api/swipes/user", http.MethodPost)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = testutil.MakeJSONRequest(gin.H{
			"job_id": database.TestTorontoJobs[2].ID,
			"action": model.ActionSave,
		}, token, r, "/api/swipes/user", http.MethodPost)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("history lists every swipe", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r, "/api/swipes/history", http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, resp["swipes"], 3)
	})

	t.Run("liked returns only applied jobs", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r, "/api/swipes/liked", http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code)

		liked := resp["jobs"].([]interface{})
		assert.Len(t, liked, 1)
		job := liked[0].(map[string]interface{})
		assert.Equal(t, database.TestTorontoJobs[0].Title, job["title"])
	})

	t.Run("stats count per action and per day", func(t *testing.T) {
		rec, resp := testutil.MakeJSONRequest(gin.H{}, token, r, "/api/swipes/stats", http.MethodGet)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 3, resp["total"])
		assert.EqualValues(t, 3, resp["swiped_today"])

		byAction := resp["by_action"].(map[string]interface{})
		assert.EqualValues(t, 1, byAction[model.ActionApply])
		assert.EqualValues(t, 1, byAction[model.ActionPass])
		assert.EqualValues(t, 1, byAction[model.ActionSave])
	})
}

func TestUserSwipeUnknownJob(t *testing.T) {
	r := swipesRouter(testDB)

	token, err := auth.GetAccessToken(t, testDB, database.TestUser2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"job_id": 999999,
		"action": model.ActionSave,
	}, token, r, "/api/swipes/user", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Invalid job id")
}

func TestUserSwipeRequiresToken(t *testing.T) {
	r := swipesRouter(testDB)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"job_id": database.TestTorontoJobs[0].ID,
		"action": model.ActionPass,
	}, "", r, "/api/swipes/user", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, resp["success"])
}
