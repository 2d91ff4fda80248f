package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzastore/ordering-system/internal/api/metrics"
	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// Require gates a route group on a named operation through the central
// authorization gate. Routes whose permission depends on request data
// (order ownership, list scope) are gated inside the service instead.
func Require(gate ports.Authorizer, op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			login, _ := c.Get("login").(string)
			if login == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if err := gate.Authorize(c.Request().Context(), login, op); err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AuthzDenialsTotal.WithLabelValues(string(op)).Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
