package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware. A missing or zero user id means the middleware did not run (or
// the token predates the current claim set); reject with 401 before any
// service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get("user_id").(uint)
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)

	if userID == 0 || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Identity{UserID: userID, Username: username, Role: role}, nil
}
