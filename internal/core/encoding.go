package core

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cybergodev/jose/internal/jsonval"
)

const (
	// MaxTokenLength caps the accepted compact serialization size.
	MaxTokenLength = 8192

	maxSegmentLength = 8192
)

// DecodeSegment decodes a base64url encoded segment. Padding is normally
// omitted in compact serialization but trailing '=' is tolerated.
func DecodeSegment(segment string) ([]byte, error) {
	if len(segment) == 0 {
		return nil, fmt.Errorf("empty segment")
	}

	if len(segment) > maxSegmentLength {
		return nil, fmt.Errorf("segment too large: maximum %d characters allowed", maxSegmentLength)
	}

	trimmed := strings.TrimRight(segment, "=")
	if !isValidBase64URL(trimmed) {
		return nil, fmt.Errorf("invalid base64url characters in segment")
	}

	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(trimmed)))
	n, err := base64.RawURLEncoding.Decode(buf, []byte(trimmed))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url: %w", err)
	}
	return buf[:n], nil
}

// DecodeObjectSegment decodes a base64url segment and parses it as a JSON
// object with member order preserved.
func DecodeObjectSegment(segment string) (*jsonval.Obj, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	obj, err := jsonval.ParseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON object: %w", err)
	}
	return obj, nil
}

// EncodeSegment returns the base64url encoding of data with padding omitted.
func EncodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// isValidBase64URL checks that s contains only base64url alphabet characters.
func isValidBase64URL(s string) bool {
	for _, char := range s {
		if !((char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '-' || char == '_') {
			return false
		}
	}
	return true
}
