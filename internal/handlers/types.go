package handlers

// CreateOrderRequest is the body of POST /create_order.
type CreateOrderRequest struct {
	Course string `json:"course"`
}

// CreateOrderResponse echoes the gateway order back to the client.
// Amount is in minor units.
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Course   string `json:"course"`
}

// VerifyPaymentRequest is the body of POST /verify_payment. All three
// fields are required; nothing is stored.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// VerifyPhoneRequest is the body of POST /verify_phone. IDToken is
// accepted but not validated yet; see PhoneHandler.VerifyPhone.
type VerifyPhoneRequest struct {
	Phone   string `json:"phone"`
	IDToken string `json:"idToken"`
}
