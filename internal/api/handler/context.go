package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxLogin extracts the authenticated login injected by the Auth
// middleware. Presence proves the middleware ran; an empty login means the
// request never passed authentication and is rejected before any service
// call.
func ctxLogin(c echo.Context) (string, error) {
	login, _ := c.Get("login").(string)
	if login == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return login, nil
}
