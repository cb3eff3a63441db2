package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/unidubna/portal/core/user"
)

// capabilityMiddleware rejects requests whose session does not carry the
// capability tag. Anonymous requests fail as unauthenticated.
func capabilityMiddleware(c user.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := getContextSession(ctx)
			if sess == nil {
				return errUnauthorized
			}
			if !sess.Can(c) {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
