package signing

import (
	"crypto"
	"fmt"
	"strings"
)

// Method verifies and produces signatures over a compact signing input
// (the header segment, a dot, and the payload segment).
type Method interface {
	Alg() string
	Sign(signingInput string, key []byte) (string, error)
	Verify(signingInput string, signature string, key []byte) error
	Hash() crypto.Hash
}

// GetMethod returns the signing method for alg, rejecting algorithms outside
// the supported HMAC family.
func GetMethod(alg string) (Method, error) {
	normalized := strings.ToUpper(strings.TrimSpace(alg))
	switch normalized {
	case "HS256":
		return hmacHS256, nil
	case "HS384":
		return hmacHS384, nil
	case "HS512":
		return hmacHS512, nil
	case "", "NONE":
		return nil, fmt.Errorf("unsigned tokens cannot be verified")
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}
}
