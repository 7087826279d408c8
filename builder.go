package jose

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cybergodev/jose/internal/core"
	"github.com/cybergodev/jose/internal/signing"
)

// RegisteredClaims represents the registered claims as defined in RFC 7519.
type RegisteredClaims struct {
	Issuer    string      `json:"iss,omitempty"` // Token issuer
	Subject   string      `json:"sub,omitempty"` // Token subject
	Audience  []string    `json:"aud,omitempty"` // Token audience
	ExpiresAt NumericDate `json:"exp,omitzero"`  // Expiration time
	NotBefore NumericDate `json:"nbf,omitzero"`  // Not valid before time
	IssuedAt  NumericDate `json:"iat,omitzero"`  // Issued at time
	ID        string      `json:"jti,omitempty"` // Unique token identifier
}

// BuilderClaims is the claim set accepted by the Builder: the registered
// claims plus free-form private claims.
type BuilderClaims struct {
	RegisteredClaims
	Extra map[string]any `json:"extra,omitempty"` // Additional custom claims
}

// BuilderConfig configures signed token creation.
type BuilderConfig struct {
	// Algorithm selects the HMAC signing algorithm (HS256, HS384, HS512).
	Algorithm string
	// Issuer is stamped into tokens whose claims carry no issuer.
	Issuer string
	// TTL is applied when claims carry no expiry.
	TTL time.Duration
}

// DefaultBuilderConfig returns the default signing configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Algorithm: "HS256",
		Issuer:    "jose",
		TTL:       15 * time.Minute,
	}
}

// Builder creates signed compact-serialized tokens. It is the inverse of
// Decoder for the signed form and exists mainly so the decode path can be
// exercised against real, verifiable input.
type Builder struct {
	key    []byte
	method signing.Method
	issuer string
	ttl    time.Duration
}

// NewBuilder creates a Builder for an HMAC key with optional configuration.
func NewBuilder(key []byte, config ...BuilderConfig) (*Builder, error) {
	if len(key) < 32 {
		return nil, ErrInvalidKey
	}

	cfg := DefaultBuilderConfig()
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Algorithm == "" {
			cfg.Algorithm = "HS256"
		}
		if cfg.TTL <= 0 {
			cfg.TTL = 15 * time.Minute
		}
	}

	method, err := signing.GetMethod(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	builderKey := make([]byte, len(key))
	copy(builderKey, key)

	return &Builder{
		key:    builderKey,
		method: method,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
	}, nil
}

type builderHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Sign fills claim defaults (issued-at, expiry, issuer, token ID), encodes
// the header and claims segments, and appends the signature.
func (b *Builder) Sign(claims BuilderClaims) (string, error) {
	now := time.Now()
	if claims.IssuedAt.IsZero() {
		claims.IssuedAt = NewNumericDate(now)
	}
	if claims.ExpiresAt.IsZero() {
		claims.ExpiresAt = NewNumericDate(now.Add(b.ttl))
	}
	if claims.Issuer == "" {
		claims.Issuer = b.issuer
	}
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}

	headerJSON, err := json.Marshal(builderHeader{Alg: b.method.Alg(), Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(&claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := core.EncodeSegment(headerJSON) + "." + core.EncodeSegment(claimsJSON)

	signature, err := b.method.Sign(signingInput, b.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingInput + "." + signature, nil
}
