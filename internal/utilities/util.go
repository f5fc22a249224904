// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sudharson99/swipeHire/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Err builds the standard error envelope.
func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}
