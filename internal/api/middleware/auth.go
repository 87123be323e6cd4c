package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/crmdesk/crm-system/internal/api/flash"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "crm_session"

// usernameKey is the context key under which Identify stores the caller's username.
const usernameKey = "username"

// Identify validates the session cookie when present and injects the
// username into context. It never rejects: pages that require a login
// add the Auth middleware on top.
func Identify(jwtSecret string, revoker ports.SessionRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return next(c)
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					return err
				}
				if revoked {
					return next(c)
				}
			}

			c.Set(usernameKey, claims.Subject)
			return next(c)
		}
	}
}

// Auth gates a route on an authenticated session. Browsers get a flash
// message and a redirect to the home page instead of a bare 401; the
// store is never touched on the rejected path.
func Auth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if username, _ := c.Get(usernameKey).(string); username == "" {
				flash.Add(c, "You must be logged in to view that page.")
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}

// Username returns the authenticated caller's username, or "" when the
// request carries no valid session.
func Username(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}
