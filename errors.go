package jose

import (
	"errors"
	"fmt"
)

// Predefined errors for common decode operations
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidKey    = errors.New("invalid key: must be at least 32 bytes with sufficient entropy")

	// Token errors
	ErrEmptyToken    = errors.New("empty token: token string cannot be empty")
	ErrTokenTooLarge = errors.New("token too large: maximum 8192 characters allowed")

	// Verification errors
	ErrTokenEncrypted = errors.New("token is encrypted: signature verification requires a decoded signed token")
	ErrNoSignature    = errors.New("token has no signature to verify")
)

// MalformedTokenError reports input whose '.' delimiter count matches
// neither the signed (2) nor the encrypted (5) compact form.
type MalformedTokenError struct {
	Input      string
	Delimiters int
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed compact token: expected 2 or 5 '.' delimiters, found %d in %q", e.Delimiters, e.Input)
}

// MalformedHeaderError reports a header segment that failed base64url
// decoding or JSON object parsing. It carries the raw segment and the full
// raw input for diagnosis.
type MalformedHeaderError struct {
	Segment string
	Input   string
	Err     error
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed token header: segment %q of token %q: %v", e.Segment, e.Input, e.Err)
}

func (e *MalformedHeaderError) Unwrap() error {
	return e.Err
}

// MalformedPayloadError reports a payload segment that failed base64url
// decoding or JSON object parsing. Signed form only; encrypted payloads are
// never parsed during decode.
type MalformedPayloadError struct {
	Segment string
	Input   string
	Err     error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed token payload: segment %q of token %q: %v", e.Segment, e.Input, e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// ValidationError represents a claim policy check failure for a specific
// field.
type ValidationError struct {
	Field   string // The claim that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed for claim '%s': %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation failed for claim '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
