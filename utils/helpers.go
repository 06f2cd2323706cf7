package utils

import (
	"net/http"

	"github.com/cardforge/cardforge-api/middleware"
)

// GetUserID returns the authenticated user id attached by the auth
// middleware.
func GetUserID(r *http.Request) (string, bool) {
	return middleware.UserID(r)
}
