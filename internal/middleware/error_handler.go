package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler creates a custom error handler for Echo. Callers
// only ever see category-level messages: validation errors keep their
// short message, everything else collapses to a generic one while the
// full detail stays in server-side logs.
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		} else {
			switch code {
			case http.StatusNotFound:
				message = "The requested resource doesn't exist."
			case http.StatusBadRequest:
				message = "The request could not be processed."
			default:
				message = "Something went wrong. Please try again later."
			}
		}
	}

	// Server faults carry detail worth keeping; validation errors don't.
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}
	if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
