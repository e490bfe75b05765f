package services

import (
	"encoding/json"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"coursepay_relay/internal/models"
)

// Gateway failures stay distinguishable at the call site: order
// creation errors surface as 500s, status lookup errors downgrade to
// "unknown status" on the callback path.
var (
	ErrOrderCreation = errors.New("order creation failed")
	ErrStatusLookup  = errors.New("payment status lookup failed")
)

// PaymentGateway is the outbound port to the payment processor. The
// callback reconciler and handlers depend on this, not on the SDK, so
// tests can script statuses and failures without network access.
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string) (*models.Order, error)
	PaymentStatus(paymentID string) (string, error)
}

// RazorpayService wraps the Razorpay SDK client. Requests authenticate
// with the key id / key secret pair; the secret never leaves this layer.
type RazorpayService struct {
	client *razorpay.Client
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	client := razorpay.NewClient(keyID, keySecret)
	// Bound outbound calls so a stalled gateway cannot pin a request
	// handler indefinitely.
	client.SetTimeout(10)
	return &RazorpayService{client: client}
}

// CreateOrder creates a gateway order for the given minor-unit amount.
// Receipt must be unique per call to avoid gateway-side collisions.
// No automatic retry on failure.
func (s *RazorpayService) CreateOrder(amount int64, currency, receipt string) (*models.Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreation, err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: response missing order id", ErrOrderCreation)
	}

	order := &models.Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if raw, err := json.Marshal(body); err == nil {
		order.Raw = raw
	}

	return order, nil
}

// PaymentStatus fetches the gateway's own status for a payment. Callers
// treat any error as "status unknown", never as "failed".
func (s *RazorpayService) PaymentStatus(paymentID string) (string, error) {
	body, err := s.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStatusLookup, err)
	}

	status, ok := body["status"].(string)
	if !ok || status == "" {
		return "", fmt.Errorf("%w: response missing status", ErrStatusLookup)
	}

	return status, nil
}
