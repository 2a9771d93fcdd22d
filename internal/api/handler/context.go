package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// subject means the middleware did not run or the token carried no subject.
func ctxIdentity(c echo.Context) (id, mail string, err error) {
	id, _ = c.Get("user_id").(string)
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	mail, _ = c.Get("mail").(string)
	return id, mail, nil
}
