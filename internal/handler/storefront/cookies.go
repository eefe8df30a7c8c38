package storefront

import (
	"net/http"

	"github.com/stridewear/storefront/internal/cookie"
)

// sessionMaxAge keeps the cart cookie for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// GetSessionIDFromCookie retrieves the session ID from the session
// cookie. Returns empty string if the cookie is not present.
func GetSessionIDFromCookie(r *http.Request) string {
	return cookie.Get(r, cookie.SessionCookieName)
}

// SetSessionCookie sets the session cookie with the store's security
// settings.
func SetSessionCookie(w http.ResponseWriter, sessionID string, cookieConfig *cookie.Config) {
	cookieConfig.SetSession(w, cookie.SessionCookieName, sessionID, sessionMaxAge)
}
