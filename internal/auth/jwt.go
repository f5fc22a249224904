// Package auth implements credential based authentication and JWT issuing.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// JwtIssuer is the issuer claim stamped on every token.
const JwtIssuer = "SwipeHire"

// tokenTTL is how long an access token stays valid.
const tokenTTL = 30 * 24 * time.Hour

// defaultDevSecret is only for local development.
// SECRET_KEY MUST be set in any real deployment.
const defaultDevSecret = "swipehire-dev-secret-change-me"

func signingSecret() []byte {
	if s := os.Getenv("SECRET_KEY"); s != "" {
		return []byte(s)
	}
	return []byte(defaultDevSecret)
}

// GenerateStandardToken signs a 30-day HS256 token whose subject is the user id.
func GenerateStandardToken(userID uuid.UUID) (string, error) {

	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    JwtIssuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signedToken, err := generatedAccessToken.SignedString(signingSecret())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %s", err)
	}

	return signedToken, nil
}

// ValidatedToken parses and verifies signature and expiry of an encoded token.
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("invalid token")
		}
		return signingSecret(), nil
	})
}
