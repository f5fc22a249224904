package middleware

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/sudharson99/swipeHire/internal/auth"
	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/testutil"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), func(c *gin.Context) {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "email": user.Email})
	})
	return r
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUser1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, protectedRouter(), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestUser1.Email, resp["email"])
}

func TestRequireAuthMissingToken(t *testing.T) {
	rec, _ := testutil.MakeJSONRequest(nil, "", protectedRouter(), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	rec, _ := testutil.MakeJSONRequest(nil, "not.a.token", protectedRouter(), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	// Token is well formed but its subject points at no row.
	token, err := auth.GenerateStandardToken(uuid.New())
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, protectedRouter(), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not exist", resp["error"])
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   database.TestUser1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "swipehire-dev-secret-change-me"
	}
	signed, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, signed, protectedRouter(), "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token expired", resp["error"])
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	r := gin.New()
	r.GET("/open", OptionalAuth(testDB), func(c *gin.Context) {
		_, err := utilities.ExtractUser(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "identified": err == nil})
	})

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/open", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["identified"])
}

func TestOptionalAuthWithToken(t *testing.T) {
	r := gin.New()
	r.GET("/open", OptionalAuth(testDB), func(c *gin.Context) {
		_, err := utilities.ExtractUser(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "identified": err == nil})
	})

	token, err := auth.GetAccessToken(t, testDB, database.TestUser2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/open", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["identified"])
}
