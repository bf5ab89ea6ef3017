// Package canonicalize provides RFC 8785 (JSON Canonicalization Scheme)
// serialization for deterministic hashing and signing of UCL artifacts.
package canonicalize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JCS returns the RFC 8785 canonical JSON representation of v.
// Map keys are sorted lexicographically by UTF-8 bytes and number
// formatting follows ECMAScript rules, so the same value always yields
// the same bytes.
func JCS(v any) ([]byte, error) {
	intermediate, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jcs: pre-marshal failed: %w", err)
	}
	canonical, err := jcs.Transform(intermediate)
	if err != nil {
		return nil, fmt.Errorf("jcs: transform failed: %w", err)
	}
	return canonical, nil
}

// CanonicalHash returns the SHA-256 hex digest of the canonical JSON
// representation of v.
func CanonicalHash(v any) (string, error) {
	b, err := JCS(v)
	if err != nil {
		return "", err
	}
	return HashBytes(b), nil
}

// HashBytes computes the SHA-256 hash of raw bytes as a hex string.
func HashBytes(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
