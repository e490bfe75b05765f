package models

import "time"

// CallbackPayload is the form-encoded body the gateway posts to the
// callback endpoint after the customer finishes the hosted payment page.
type CallbackPayload struct {
	PaymentID string
	OrderID   string
	Signature string
}

// CallbackEvent is the consolidated audit record of one callback
// reconciliation. Immutable once constructed; StatusAPI is nil when the
// independent status lookup failed (unknown, not failed).
type CallbackEvent struct {
	PaymentID          string    `json:"payment_id"`
	OrderID            string    `json:"order_id"`
	SignatureReceived  string    `json:"signature_received"`
	SignatureGenerated string    `json:"signature_generated"`
	SignatureMatch     bool      `json:"signature_match"`
	StatusAPI          *string   `json:"status_api"`
	Timestamp          time.Time `json:"timestamp"`
}
