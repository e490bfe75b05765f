package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"coursepay_relay/internal/audit"
	"coursepay_relay/internal/catalog"
	"coursepay_relay/internal/models"
	"coursepay_relay/internal/services"
	"coursepay_relay/internal/signature"
)

type PaymentHandler struct {
	catalog    *catalog.Catalog
	gateway    services.PaymentGateway
	verifier   *signature.Verifier
	reconciler *services.Reconciler
	auditLog   audit.Recorder
	logger     *zap.Logger
}

func NewPaymentHandler(cat *catalog.Catalog, gateway services.PaymentGateway, verifier *signature.Verifier, reconciler *services.Reconciler, auditLog audit.Recorder, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		catalog:    cat,
		gateway:    gateway,
		verifier:   verifier,
		reconciler: reconciler,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// CreateOrder validates the course against the catalog and creates a
// gateway order for its price. Unknown courses are rejected before any
// gateway call is made.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	price, ok := h.catalog.Price(req.Course)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid course")
	}

	h.auditLog.Record(audit.StreamOrderRequests,
		zap.String("course", req.Course),
		zap.Int64("price", price),
	)

	// Catalog prices are whole currency units; the gateway wants minor
	// units.
	amount := price * 100
	receipt := fmt.Sprintf("rcpt_%d", time.Now().UnixNano())

	order, err := h.gateway.CreateOrder(amount, models.CurrencyINR, receipt)
	if err != nil {
		h.logger.Error("order creation failed",
			zap.String("course", req.Course),
			zap.Error(err),
		)
		h.auditLog.Record(audit.StreamOrderErrors,
			zap.String("course", req.Course),
			zap.String("error", err.Error()),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	h.auditLog.Record(audit.StreamOrderResponses,
		zap.String("order_id", order.ID),
		zap.ByteString("response", order.Raw),
	)

	return c.JSON(http.StatusOK, CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Course:   req.Course,
	})
}

// VerifyPayment checks a client-supplied signature against the one this
// backend computes. Pure verification: no state is written.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	valid := h.verifier.Verify(req.Signature, req.OrderID, req.PaymentID)
	return c.JSON(http.StatusOK, map[string]bool{"valid": valid})
}

// PaymentCallback receives the gateway's form-encoded completion
// callback and runs the reconciliation pipeline. The caller is a
// browser, so the terminal response is always a redirect, never JSON.
func (h *PaymentHandler) PaymentCallback(c echo.Context) error {
	payload := models.CallbackPayload{
		PaymentID: c.FormValue("razorpay_payment_id"),
		OrderID:   c.FormValue("razorpay_order_id"),
		Signature: c.FormValue("razorpay_signature"),
	}

	result := h.reconciler.Process(payload)
	if !result.Accepted {
		h.logger.Info("payment callback rejected",
			zap.String("payment_id", payload.PaymentID),
			zap.String("order_id", payload.OrderID),
			zap.Bool("signature_match", result.Event.SignatureMatch),
		)
	}

	return c.Redirect(http.StatusFound, result.RedirectURL)
}
