package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// dataResponse is the success envelope returned by every endpoint.
type dataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, dataResponse{Message: message, Data: data})
}

func badPayload() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}
