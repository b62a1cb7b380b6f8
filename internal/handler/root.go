package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootMessage is the liveness text served at GET /.
const RootMessage = "Server is running on Port!!"

// Root handles GET /.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}
