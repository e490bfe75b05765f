package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVerifyPhone(t *testing.T) {
	handler := NewPhoneHandler(zap.NewNop())
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/verify_phone", `{"phone": "+911234567890", "idToken": "whatever"}`)
	require.NoError(t, handler.VerifyPhone(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "+911234567890", resp["phone"])
}

func TestVerifyPhoneMissingPhone(t *testing.T) {
	handler := NewPhoneHandler(zap.NewNop())
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/verify_phone", `{"idToken": "whatever"}`)
	err := handler.VerifyPhone(e.NewContext(req, rec))

	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
}
