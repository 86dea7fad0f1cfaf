package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Guard renders protected pages only for authenticated sessions and
// redirects everyone else to the entry route.
func Guard(session Session, entry string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.Authenticated() {
				return c.Redirect(http.StatusFound, entry)
			}
			return next(c)
		}
	}
}

// Require is the API variant of Guard and answers 401 instead of redirecting.
func Require(session Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
			}
			return next(c)
		}
	}
}
