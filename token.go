package jose

import (
	"time"

	"github.com/cybergodev/jose/internal/jsonval"
)

// Registered claim and header parameter names used by the facade accessors.
const (
	claimIssuer    = "iss"
	claimSubject   = "sub"
	claimAudience  = "aud"
	claimExpiresAt = "exp"
	claimNotBefore = "nbf"
	claimIssuedAt  = "iat"
	claimID        = "jti"

	headerAlgorithm   = "alg"
	headerType        = "typ"
	headerContentType = "cty"
	headerKeyID       = "kid"
	headerEncryption  = "enc"
	headerCompression = "zip"
)

// Token is a decoded compact-serialized security token. Exactly one of the
// signed and encrypted raw segment groups is populated; the header is never
// nil after a successful decode. The payload is nil for encrypted tokens
// until an external decryption step supplies it.
//
// All derived accessors are computed lazily on each call and never fail:
// absent claims yield typed defaults (empty string, empty slice, zero time).
type Token struct {
	header  *jsonval.Obj
	payload *jsonval.Obj

	rawData    string
	rawHeader  string
	rawPayload string

	rawSignature string

	rawEncryptedKey          string
	rawInitializationVector  string
	rawCiphertext            string
	rawAuthenticationTag     string

	encrypted   bool
	localIssuer string
}

// IsEncrypted reports whether the token was decoded from the 5-delimiter
// encrypted compact form.
func (t *Token) IsEncrypted() bool { return t.encrypted }

// RawData returns the original compact serialization passed to the decoder.
func (t *Token) RawData() string { return t.rawData }

// RawHeader returns the encoded header segment verbatim.
func (t *Token) RawHeader() string { return t.rawHeader }

// RawPayload returns the encoded payload segment verbatim. Empty for
// encrypted tokens.
func (t *Token) RawPayload() string { return t.rawPayload }

// RawSignature returns the encoded signature segment verbatim. It may be the
// empty string for unsigned ("none" algorithm) tokens.
func (t *Token) RawSignature() string { return t.rawSignature }

// RawEncryptedKey returns the encoded encrypted-key segment of an encrypted
// token.
func (t *Token) RawEncryptedKey() string { return t.rawEncryptedKey }

// RawInitializationVector returns the encoded IV segment of an encrypted
// token.
func (t *Token) RawInitializationVector() string { return t.rawInitializationVector }

// RawCiphertext returns the encoded ciphertext segment of an encrypted
// token.
func (t *Token) RawCiphertext() string { return t.rawCiphertext }

// RawAuthenticationTag returns the encoded authentication tag segment of an
// encrypted token.
func (t *Token) RawAuthenticationTag() string { return t.rawAuthenticationTag }

// SigningInput returns the exact bytes a signature covers: the encoded
// header segment, a dot, and the encoded payload segment.
func (t *Token) SigningInput() string {
	return t.rawHeader + "." + t.rawPayload
}

// HeaderJSON returns the compact JSON text of the parsed header.
func (t *Token) HeaderJSON() string { return t.header.Compact() }

// PayloadJSON returns the compact JSON text of the parsed payload, or "" for
// encrypted tokens.
func (t *Token) PayloadJSON() string {
	if t.payload == nil {
		return ""
	}
	return t.payload.Compact()
}

// String renders the decoded header and payload as compact JSON joined by a
// dot, a diagnostic view that never exposes signature or key material.
func (t *Token) String() string {
	return t.HeaderJSON() + "." + t.PayloadJSON()
}

// Algorithm returns the "alg" header parameter, or "".
func (t *Token) Algorithm() string { return t.header.Str(headerAlgorithm) }

// Type returns the "typ" header parameter, or "".
func (t *Token) Type() string { return t.header.Str(headerType) }

// ContentType returns the "cty" header parameter, or "".
func (t *Token) ContentType() string { return t.header.Str(headerContentType) }

// KeyID returns the "kid" header parameter, or "".
func (t *Token) KeyID() string { return t.header.Str(headerKeyID) }

// Encryption returns the "enc" header parameter of an encrypted token, or "".
func (t *Token) Encryption() string { return t.header.Str(headerEncryption) }

// Compression returns the "zip" header parameter, or "".
func (t *Token) Compression() string { return t.header.Str(headerCompression) }

// Issuer returns the "iss" claim, or "".
func (t *Token) Issuer() string { return t.payload.Str(claimIssuer) }

// Subject returns the "sub" claim, or "".
func (t *Token) Subject() string { return t.payload.Str(claimSubject) }

// ID returns the "jti" claim, or "".
func (t *Token) ID() string { return t.payload.Str(claimID) }

// Audiences returns the "aud" claim as a sequence: a single string claim is
// wrapped in a one-element slice, a string array is returned in order, and
// an absent claim yields an empty slice.
func (t *Token) Audiences() []string {
	v := t.payload.Value(claimAudience)
	switch v.Kind() {
	case jsonval.String:
		return []string{v.Str()}
	case jsonval.Array:
		items := v.Items()
		audiences := make([]string, 0, len(items))
		for _, item := range items {
			if item.Kind() == jsonval.String {
				audiences = append(audiences, item.Str())
			}
		}
		return audiences
	default:
		return []string{}
	}
}

// IssuedAt returns the "iat" claim as a time, or the zero time when absent.
func (t *Token) IssuedAt() time.Time {
	return numericTime(t.payload.Value(claimIssuedAt))
}

// NotBefore returns the "nbf" claim as a time, or the zero time when absent.
func (t *Token) NotBefore() time.Time {
	return numericTime(t.payload.Value(claimNotBefore))
}

// ExpiresAt returns the "exp" claim as a time, or the zero time when absent.
func (t *Token) ExpiresAt() time.Time {
	return numericTime(t.payload.Value(claimExpiresAt))
}

// StringClaim returns the named payload claim as a string, or "" when the
// claim is absent or not a string.
func (t *Token) StringClaim(name string) string {
	return t.payload.Str(name)
}

// Claims materializes the payload into a flat, typed claim sequence in
// payload member order. The sequence is recomputed on every call; callers
// own the returned slice.
//
// Every claim carries the token's resolved issuer: the "iss" claim when
// present, otherwise the LocalIssuer sentinel.
func (t *Token) Claims() []Claim {
	return materializeClaims(t.payload, t.resolvedIssuer())
}

func (t *Token) resolvedIssuer() string {
	if iss := t.payload.Str(claimIssuer); iss != "" {
		return iss
	}
	if t.localIssuer != "" {
		return t.localIssuer
	}
	return LocalIssuer
}
