package storefront

import "net/http"

// SessionCookieName identifies the storefront session cookie.
const SessionCookieName = "smartshop_session"

const sessionCookieMaxAge = 30 * 24 * 60 * 60

// GetSessionIDFromCookie returns the session id from the cookie, or ""
// when the cookie is absent.
func GetSessionIDFromCookie(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetSessionCookie sets the session cookie with the usual hardening.
func SetSessionCookie(w http.ResponseWriter, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
