package x402

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/smart402/core/pkg/canonicalize"
)

// Signer produces a deterministic message-authentication code over a
// signing payload. Implementations must be safe for concurrent use.
type Signer interface {
	// Sign returns an algorithm-tagged digest, e.g. "hmac-sha256:<hex>".
	Sign(payload []byte) (string, error)
	// Algorithm names the tag prefixed to every signature.
	Algorithm() string
}

// AlgorithmHMACSHA256 tags signatures produced by HMACSigner.
const AlgorithmHMACSHA256 = "hmac-sha256"

// HMACSigner signs payloads with HMAC-SHA256 under a configurable key.
type HMACSigner struct {
	key []byte
}

// NewHMACSigner creates a signer from a non-empty key.
func NewHMACSigner(key []byte) (*HMACSigner, error) {
	if len(key) == 0 {
		return nil, errors.New("x402: signing key must not be empty")
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &HMACSigner{key: k}, nil
}

func (s *HMACSigner) Algorithm() string {
	return AlgorithmHMACSHA256
}

func (s *HMACSigner) Sign(payload []byte) (string, error) {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return AlgorithmHMACSHA256 + ":" + hex.EncodeToString(mac.Sum(nil)), nil
}

// signingPayload is the canonical byte form of the signed header fields.
// RFC 8785 canonical JSON keeps the payload stable regardless of how the
// fields were assembled.
func signingPayload(contractID, amount, token, nonce string) ([]byte, error) {
	return canonicalize.JCS(map[string]string{
		"contract_id": contractID,
		"amount":      amount,
		"token":       token,
		"nonce":       nonce,
	})
}
