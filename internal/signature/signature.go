package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier computes and checks payment signatures. The gateway signs
// callbacks with HMAC-SHA256 over "order_id|payment_id" keyed with the
// key secret; only this backend ever holds that secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Compute returns the hex HMAC-SHA256 digest for the given identifiers.
// Deterministic: the same pair always yields the same digest.
func (v *Verifier) Compute(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the claimed signature matches the computed one.
// An unset secret fails closed. The comparison is constant-time.
func (v *Verifier) Verify(claimed, orderID, paymentID string) bool {
	if len(v.secret) == 0 {
		return false
	}
	return hmac.Equal([]byte(claimed), []byte(v.Compute(orderID, paymentID)))
}
