package services

import (
	"net/url"
	"time"

	"go.uber.org/zap"

	"coursepay_relay/internal/audit"
	"coursepay_relay/internal/models"
	"coursepay_relay/internal/signature"
)

// Reconciler decides whether a gateway callback represents a real
// captured payment. A valid signature only proves the payload was not
// tampered with; a "captured" status alone does not prove this
// particular callback is authentic. Both signals must agree before the
// payment is accepted.
type Reconciler struct {
	verifier *signature.Verifier
	gateway  PaymentGateway
	auditLog audit.Recorder

	successURL string
	failureURL string
}

func NewReconciler(verifier *signature.Verifier, gateway PaymentGateway, auditLog audit.Recorder, successURL, failureURL string) *Reconciler {
	return &Reconciler{
		verifier:   verifier,
		gateway:    gateway,
		auditLog:   auditLog,
		successURL: successURL,
		failureURL: failureURL,
	}
}

// ReconcileResult is the terminal outcome of one callback invocation.
type ReconcileResult struct {
	Accepted    bool
	RedirectURL string
	Event       models.CallbackEvent
}

// Process runs the callback pipeline once:
// received -> signature checked -> status queried -> decided -> logged
// -> redirect target chosen. Every invocation writes exactly one
// consolidated decision record and always resolves to a redirect.
func (r *Reconciler) Process(payload models.CallbackPayload) ReconcileResult {
	// Audit-first: preserve the raw inbound payload before any
	// validation, so evidence survives even if a later step fails.
	r.auditLog.Record(audit.StreamCallbackPayloads,
		zap.String("razorpay_payment_id", payload.PaymentID),
		zap.String("razorpay_order_id", payload.OrderID),
		zap.String("razorpay_signature", payload.Signature),
	)

	generated := r.verifier.Compute(payload.OrderID, payload.PaymentID)
	match := r.verifier.Verify(payload.Signature, payload.OrderID, payload.PaymentID)

	// Dual inquiry: ask the gateway directly what happened to this
	// payment, independent of the callback's own claim. A failed lookup
	// means unknown, not failed, and never aborts the pipeline.
	var statusAPI *string
	status, err := r.gateway.PaymentStatus(payload.PaymentID)
	if err != nil {
		r.auditLog.Record(audit.StreamCallbackStatusErrors,
			zap.String("payment_id", payload.PaymentID),
			zap.String("error", err.Error()),
		)
	} else {
		statusAPI = &status
	}

	accepted := match && statusAPI != nil && *statusAPI == models.PaymentStatusCaptured

	event := models.CallbackEvent{
		PaymentID:          payload.PaymentID,
		OrderID:            payload.OrderID,
		SignatureReceived:  payload.Signature,
		SignatureGenerated: generated,
		SignatureMatch:     match,
		StatusAPI:          statusAPI,
		Timestamp:          time.Now().UTC(),
	}
	r.recordDecision(event, accepted)

	redirect := r.failureURL
	if accepted {
		redirect = r.successURL + "?order_id=" + url.QueryEscape(payload.OrderID)
	}

	return ReconcileResult{
		Accepted:    accepted,
		RedirectURL: redirect,
		Event:       event,
	}
}

func (r *Reconciler) recordDecision(event models.CallbackEvent, accepted bool) {
	fields := []zap.Field{
		zap.String("payment_id", event.PaymentID),
		zap.String("order_id", event.OrderID),
		zap.String("signature_received", event.SignatureReceived),
		zap.String("signature_generated", event.SignatureGenerated),
		zap.Bool("signature_match", event.SignatureMatch),
		zap.Bool("accepted", accepted),
	}
	if event.StatusAPI != nil {
		fields = append(fields, zap.String("status_api", *event.StatusAPI))
	} else {
		fields = append(fields, zap.Any("status_api", nil))
	}
	r.auditLog.Record(audit.StreamCallbackDecisions, fields...)
}
