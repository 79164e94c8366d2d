package authUtils

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const defaultTokenTTLHours = 72

// IssueToken signs a JWT carrying the user's id. The TTL comes from
// AUTH_TOKEN_TTL_HOURS, defaulting to 72 hours.
func IssueToken(userID string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ttl := defaultTokenTTLHours
	if raw := os.Getenv("AUTH_TOKEN_TTL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Duration(ttl) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// SetAuthCookie attaches the session token as the auth_token cookie.
// In production the domain is left empty so cross-origin frontends can
// send the cookie.
func SetAuthCookie(c *gin.Context, token string) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")
	if environment == "production" {
		domain = ""
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearAuthCookie expires the auth_token cookie.
func ClearAuthCookie(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")
	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
}
