package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"placehub/internal/api/services"
	"placehub/internal/repository"
)

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrValidation(c echo.Context, verr *services.ValidationError) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":  services.ErrInvalidInput.Error(),
		"fields": verr.Fields,
	})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// respondError maps service and repository errors onto HTTP responses. Only
// unexpected failures are logged.
func respondError(c echo.Context, component string, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return ErrValidation(c, verr)
	case errors.Is(err, services.ErrInvalidInput):
		return ErrBadRequest(c, "")
	case errors.Is(err, services.ErrInvalidIdentifier):
		return ErrBadRequest(c, "invalid id")
	case errors.Is(err, repository.ErrAreaNotFound):
		return ErrBadRequest(c, "area not found")
	case errors.Is(err, repository.ErrPlaceNotFound):
		return ErrNotFound(c, "place not found")
	default:
		log.Printf("[%s] %s %s: %v", component, c.Request().Method, c.Request().URL.Path, err)
		return ErrInternalServerError(c)
	}
}
