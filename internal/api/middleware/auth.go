package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/itam-platform/identity-service/internal/api/metrics"
	"github.com/itam-platform/identity-service/internal/core/domain"
	"github.com/itam-platform/identity-service/internal/core/ports"
)

// identityKey is the echo context key the authenticated identity is stored
// under. Handlers read it through CurrentUser rather than touching the key.
const identityKey = "auth.identity"

// Authenticate verifies the bearer token and loads the identity it names,
// with the password hash projected out of every downstream view (the domain
// type never serializes it). A token whose identity no longer exists is
// rejected: deletion invalidates outstanding tokens immediately.
func Authenticate(issuer ports.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
			}

			// The original clients send the raw token; newer ones send a
			// Bearer scheme. Accept both.
			token := raw
			if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}

			userID, err := issuer.Verify(token)
			if err != nil {
				result := "invalid"
				if err == domain.ErrExpiredToken {
					result = "expired"
				}
				metrics.TokenChecksTotal.WithLabelValues(result).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrUserNotFound {
					metrics.TokenChecksTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token")
				}
				return err
			}

			metrics.TokenChecksTotal.WithLabelValues("ok").Inc()
			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity placed in the context by Authenticate,
// or nil when the request never passed through it.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
