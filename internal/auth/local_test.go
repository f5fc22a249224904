package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

var testDB *database.DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
}

// Helper: validate access token in response and return claims.
func assertValidAccessToken(t *testing.T, resp map[string]interface{}) *jwt.RegisteredClaims {
	t.Helper()
	tokenStr, ok := resp["token"].(string)
	assert.True(t, ok, "token not a string")
	token, err := ValidatedToken(tokenStr)
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	assert.True(t, ok, "claims type mismatch")
	assert.NotEmpty(t, claims.Subject, "token subject empty")
	return claims
}

func TestSignup(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"email":      "carol@example.com",
		"password":   "secret1",
		"first_name": "Carol",
		"last_name":  "Danvers",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.SignupHandler, "/signup", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assert.Contains(t, resp, "token")
	assert.Equal(t, true, resp["success"])

	claims := assertValidAccessToken(t, resp)

	userObj, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok, "user object missing or wrong type")
	assert.Equal(t, "carol@example.com", userObj["email"])
	assert.Equal(t, userObj["id"], claims.Subject, "JWT subject should match user id")
	// Password hash must never leave the server.
	assert.NotContains(t, userObj, "password")
}

func TestSignupDuplicateEmail(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"email":      database.TestUser1.Email,
		"password":   "whatever1",
		"first_name": "Other",
		"last_name":  "Person",
	}
	rec, _, err := utilities.SimulateAPICall(handler.SignupHandler, "/signup", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var count int64
	testDB.Model(&model.User{}).Where("email = ?", database.TestUser1.Email).Count(&count)
	assert.Equal(t, int64(1), count, "duplicate signup must not create a row")
}

func TestSignupValidation(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	cases := []map[string]string{
		{"email": "not-an-email", "password": "secret1", "first_name": "A", "last_name": "B"},
		{"email": "short@example.com", "password": "abc", "first_name": "A", "last_name": "B"},
		{"email": "nocity@example.com", "password": "secret1", "first_name": "A", "last_name": "B", "preferred_city": "winnipeg"},
		{"email": "noname@example.com", "password": "secret1"},
	}
	for _, payload := range cases {
		rec, _, err := utilities.SimulateAPICall(handler.SignupHandler, "/signup", http.MethodPost, payload)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload %v should be rejected", payload)
	}
}

func TestLogin(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    database.TestUser1.Email,
		"password": database.TestSeedPassword,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())

	claims := assertValidAccessToken(t, resp)
	assert.Equal(t, database.TestUser1.ID.String(), claims.Subject)
}

func TestLoginGenericUnauthorized(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	// Wrong password and unknown email must be indistinguishable.
	recWrongPwd, respWrongPwd, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    database.TestUser1.Email,
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recWrongPwd.Code)

	recUnknown, respUnknown, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    "nobody@example.com",
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)

	assert.Equal(t, respWrongPwd["error"], respUnknown["error"])
}

func TestExpiredTokenRejected(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   database.TestUser1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	})
	signed, err := expired.SignedString(signingSecret())
	assert.NoError(t, err)

	_, err = ValidatedToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestConvertSwipes(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	sessionID := "sess-" + uuid.NewString()
	anonSwipes := []model.AnonymousSwipe{
		{SessionID: sessionID, JobID: database.TestTorontoJobs[0].ID, Action: model.ActionApply, IPAddress: "10.0.0.1"},
		{SessionID: sessionID, JobID: database.TestTorontoJobs[1].ID, Action: model.ActionPass, IPAddress: "10.0.0.1"},
	}
	assert.NoError(t, testDB.Create(&anonSwipes).Error)

	payload := map[string]string{
		"session_id": sessionID,
		"user_id":    database.TestUser1.ID.String(),
	}

	rec, resp, err := utilities.SimulateAPICall(handler.ConvertSwipesHandler, "/convert-swipes", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "unexpected status, body: %s", rec.Body.String())
	assert.Equal(t, float64(2), resp["converted"])
	assert.Equal(t, float64(0), resp["skipped"])

	// Converting the same session again must not duplicate rows.
	rec, resp, err = utilities.SimulateAPICall(handler.ConvertSwipesHandler, "/convert-swipes", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["converted"])
	assert.Equal(t, float64(2), resp["skipped"])

	var count int64
	testDB.Model(&model.UserSwipe{}).Where("user_id = ?", database.TestUser1.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}
