package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIsDeterministic(t *testing.T) {
	v := NewVerifier("test-secret")

	first := v.Compute("order_123", "pay_456")
	second := v.Compute("order_123", "pay_456")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestComputeVariesWithInputs(t *testing.T) {
	v := NewVerifier("test-secret")

	base := v.Compute("order_123", "pay_456")

	assert.NotEqual(t, base, v.Compute("order_124", "pay_456"))
	assert.NotEqual(t, base, v.Compute("order_123", "pay_457"))
	assert.NotEqual(t, base, NewVerifier("other-secret").Compute("order_123", "pay_456"))
}

func TestVerify(t *testing.T) {
	v := NewVerifier("test-secret")
	valid := v.Compute("order_123", "pay_456")

	assert.True(t, v.Verify(valid, "order_123", "pay_456"))
	assert.False(t, v.Verify(valid, "order_999", "pay_456"))
	assert.False(t, v.Verify("", "order_123", "pay_456"))
}

func TestVerifyRejectsSingleCharacterFlips(t *testing.T) {
	v := NewVerifier("test-secret")
	valid := v.Compute("order_123", "pay_456")

	for i := range valid {
		flipped := []byte(valid)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		require.False(t, v.Verify(string(flipped), "order_123", "pay_456"),
			"flipped signature at index %d must not verify", i)
	}
}

func TestVerifyFailsClosedWithoutSecret(t *testing.T) {
	empty := NewVerifier("")

	// Even the digest the empty-keyed verifier itself would compute
	// must be rejected.
	digest := empty.Compute("order_123", "pay_456")
	assert.False(t, empty.Verify(digest, "order_123", "pay_456"))
}
