package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/proconnect-app/backend/internal/interactions"
)

// httpError maps service errors to transport errors. Validation → 400,
// forbidden → 403, missing target → 404, anything else → 500 with a
// generic message (the cause is logged, not leaked).
func httpError(err error) *echo.HTTPError {
	var ve *interactions.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": "Validation failed",
			"errors":  []echo.Map{{"field": ve.Field, "message": ve.Reason}},
		})
	case errors.Is(err, interactions.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, interactions.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		log.Printf("Store error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
