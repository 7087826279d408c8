package signing

import (
	"crypto"
	"crypto/hmac"
	"encoding/base64"
	"errors"
	"fmt"

	// Register the hash implementations behind crypto.SHA256/384/512.
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/cybergodev/jose/internal/security"
)

type hmacSigningMethod struct {
	Name     string
	HashFunc crypto.Hash
}

func (h *hmacSigningMethod) Verify(signingInput string, signature string, key []byte) error {
	if err := h.checkKey(key); err != nil {
		return err
	}

	sigBytes, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	defer security.ZeroBytes(sigBytes)

	hasher := hmac.New(h.HashFunc.New, key)
	hasher.Write([]byte(signingInput))
	expected := hasher.Sum(nil)
	defer security.ZeroBytes(expected)

	if !security.SecureCompare(sigBytes, expected) {
		security.SecureRandomDelay()
		return errors.New("signature verification failed")
	}
	return nil
}

func (h *hmacSigningMethod) Sign(signingInput string, key []byte) (string, error) {
	if err := h.checkKey(key); err != nil {
		return "", err
	}

	hasher := hmac.New(h.HashFunc.New, key)
	hasher.Write([]byte(signingInput))
	signature := hasher.Sum(nil)
	defer security.ZeroBytes(signature)

	return base64.RawURLEncoding.EncodeToString(signature), nil
}

func (h *hmacSigningMethod) checkKey(key []byte) error {
	if len(key) < 32 {
		return fmt.Errorf("HMAC key too short: minimum 32 bytes required, got %d", len(key))
	}
	if security.IsWeakKey(key) {
		return fmt.Errorf("weak HMAC key detected: key must have sufficient entropy")
	}
	if !h.HashFunc.Available() {
		return fmt.Errorf("hash function %v not available", h.HashFunc)
	}
	return nil
}

func (h *hmacSigningMethod) Alg() string {
	return h.Name
}

func (h *hmacSigningMethod) Hash() crypto.Hash {
	return h.HashFunc
}

var (
	hmacHS256 = &hmacSigningMethod{"HS256", crypto.SHA256}
	hmacHS384 = &hmacSigningMethod{"HS384", crypto.SHA384}
	hmacHS512 = &hmacSigningMethod{"HS512", crypto.SHA512}
)
