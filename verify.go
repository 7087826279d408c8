package jose

import (
	"fmt"

	"github.com/cybergodev/jose/internal/signing"
)

// Verifier checks token signatures over the decoded raw segments. It never
// inspects claim semantics; pair it with VerifyConfig for policy checks.
type Verifier struct {
	key []byte
}

// NewVerifier creates a Verifier for an HMAC key. The key must be at least
// 32 bytes with sufficient entropy.
func NewVerifier(key []byte) (*Verifier, error) {
	if len(key) < 32 {
		return nil, ErrInvalidKey
	}
	verifierKey := make([]byte, len(key))
	copy(verifierKey, key)
	return &Verifier{key: verifierKey}, nil
}

// Verify re-derives the signed bytes from the token's raw header and payload
// segments and checks the signature against the algorithm named in the
// header.
func (v *Verifier) Verify(token *Token) error {
	if token == nil {
		return ErrEmptyToken
	}
	if token.IsEncrypted() {
		return ErrTokenEncrypted
	}
	if token.RawSignature() == "" {
		return ErrNoSignature
	}

	method, err := signing.GetMethod(token.Algorithm())
	if err != nil {
		return fmt.Errorf("cannot verify token: %w", err)
	}

	if err := method.Verify(token.SigningInput(), token.RawSignature(), v.key); err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	return nil
}
