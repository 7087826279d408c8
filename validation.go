package jose

import (
	"fmt"
	"time"
)

// VerifyConfig expresses the claim policy checks applied to a decoded token.
// Zero-valued fields are skipped, mirroring the tolerant-reader stance of
// the facade accessors: structural decode failures are fatal, semantic
// absence is not — unless a policy explicitly demands the claim.
type VerifyConfig struct {
	// ExpectedIssuer requires the iss claim to match this value
	ExpectedIssuer string

	// ExpectedSubject requires the sub claim to match this value
	ExpectedSubject string

	// ExpectedAudience requires the aud claim to contain this value
	ExpectedAudience string

	// Leeway is the clock skew tolerance applied to time claims
	Leeway time.Duration

	// Now supplies the current time for time claim checks. Defaults to
	// time.Now.
	Now func() time.Time
}

// Validate applies the configured policy to a decoded token.
func (c VerifyConfig) Validate(token *Token) error {
	if token == nil {
		return ErrEmptyToken
	}
	if token.IsEncrypted() {
		return ErrTokenEncrypted
	}

	if c.ExpectedIssuer != "" && token.Issuer() != c.ExpectedIssuer {
		return &ValidationError{
			Field:   claimIssuer,
			Message: fmt.Sprintf("issuer mismatch: expected %q, got %q", c.ExpectedIssuer, token.Issuer()),
		}
	}

	if c.ExpectedSubject != "" && token.Subject() != c.ExpectedSubject {
		return &ValidationError{
			Field:   claimSubject,
			Message: fmt.Sprintf("subject mismatch: expected %q, got %q", c.ExpectedSubject, token.Subject()),
		}
	}

	if c.ExpectedAudience != "" && !containsAudience(token.Audiences(), c.ExpectedAudience) {
		return &ValidationError{
			Field:   claimAudience,
			Message: fmt.Sprintf("audience %q not present", c.ExpectedAudience),
		}
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	if exp := token.ExpiresAt(); !exp.IsZero() && now().After(exp.Add(c.Leeway)) {
		return &ValidationError{
			Field:   claimExpiresAt,
			Message: fmt.Sprintf("token expired at %s", exp.Format(time.RFC3339)),
		}
	}

	if nbf := token.NotBefore(); !nbf.IsZero() && now().Before(nbf.Add(-c.Leeway)) {
		return &ValidationError{
			Field:   claimNotBefore,
			Message: fmt.Sprintf("token not valid before %s", nbf.Format(time.RFC3339)),
		}
	}

	return nil
}

func containsAudience(audiences []string, expected string) bool {
	for _, aud := range audiences {
		if aud == expected {
			return true
		}
	}
	return false
}
