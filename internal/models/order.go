package models

import "encoding/json"

const (
	// CurrencyINR is the only currency the relay transacts in.
	CurrencyINR = "INR"

	// PaymentStatusCaptured is the gateway's terminal status meaning
	// funds were actually collected.
	PaymentStatusCaptured = "captured"
)

// Order is a gateway-created payment order. It is never persisted
// locally; its ID is the correlation key for later verification and
// callbacks. Amount is in minor units (paise).
type Order struct {
	ID       string          `json:"id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt,omitempty"`
	Raw      json.RawMessage `json:"-"`
}
