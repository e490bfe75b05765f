package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PhoneHandler struct {
	logger *zap.Logger
}

func NewPhoneHandler(logger *zap.Logger) *PhoneHandler {
	return &PhoneHandler{logger: logger}
}

// VerifyPhone acknowledges a phone number submission. The idToken field
// is accepted but not validated here: identity verification is
// delegated to an external provider and wiring it up is a known gap.
func (h *PhoneHandler) VerifyPhone(c echo.Context) error {
	var req VerifyPhoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing phone")
	}

	h.logger.Info("phone verification requested", zap.String("phone", req.Phone))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"phone":   req.Phone,
	})
}
