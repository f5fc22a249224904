package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type signupInfo struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	FirstName     string `json:"first_name" binding:"required,min=1,max=50"`
	LastName      string `json:"last_name" binding:"required,min=1,max=50"`
	Phone         string `json:"phone" binding:"omitempty,max=50"`
	PreferredCity string `json:"preferred_city" binding:"omitempty,oneof=vancouver toronto calgary"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler handles account creation from email, password and profile fields.
// @Summary Create account and return access token
// @Description Email must not already be registered, password must be at least 6 characters
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body signupInfo true "signup information, preferred_city one of vancouver, toronto, calgary"
// @Success 201 {object} model.AuthResponse "Account created"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 409 {object} utilities.ErrorResponse "Email already registered"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/signup [post]
func (lh *LocalAuthHandler) SignupHandler(c *gin.Context) {
	var info signupInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err(fmt.Sprintf("Invalid signup data: %s", err.Error())))
		return
	}

	var existing model.User
	err := lh.DB.Where("email = ?", info.Email).First(&existing).Error

	switch {
	case err == nil:
		c.JSON(http.StatusConflict, utilities.Err("Email already registered"))
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Database error: %s", err.Error())))
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed hash password: %s", err.Error())))
		return
	}

	user := model.User{
		Email:     info.Email,
		Password:  hashedPassword,
		FirstName: info.FirstName,
		LastName:  info.LastName,
	}
	if info.Phone != "" {
		user.Phone = &info.Phone
	}
	if info.PreferredCity != "" {
		user.PreferredCity = &info.PreferredCity
	}

	if err := lh.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to create user: %s", err.Error())))
		return
	}

	accessToken, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to generate access token: %s", err.Error())))
		return
	}

	c.JSON(http.StatusCreated, model.AuthResponse{
		Success:     true,
		User:        user,
		AccessToken: accessToken,
	})
}

// LoginHandler handles login by email and password.
// The 401 message never reveals whether the email or the password was wrong.
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} model.AuthResponse "Logged in"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Email not registered or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Err("Email or password is not provided"))
		return
	}

	var user model.User
	err := lh.DB.Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusUnauthorized, utilities.Err("Invalid email or password"))
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Database error: %s", err.Error())))
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, utilities.Err("Invalid email or password"))
		return
	}

	accessToken, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Err(fmt.Sprintf("Failed to generate access token: %s", err.Error())))
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success:     true,
		User:        user,
		AccessToken: accessToken,
	})
}

// VerifyHandler returns the identity resolved by the RequireAuth middleware.
// @Summary Return the identity behind a bearer token
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.AuthResponse "Token is valid"
// @Failure 401 {object} utilities.ErrorResponse "Token absent, malformed, expired or user gone"
// @Router /auth/verify [get]
func (lh *LocalAuthHandler) VerifyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.Err(err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		User:    user,
	})
}
