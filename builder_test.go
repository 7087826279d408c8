package jose_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jose"
)

var (
	signingKey = []byte("Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-gH9~jK2#")
	otherKey   = []byte("Qw3&rT7!yU2@iO9#pA5$sD8^fG1*hJ4%kL6+zX0-cV3~bN7!")
)

// ============================================================================
// SIGN AND DECODE ROUND TRIP
// ============================================================================

func TestBuilderSignDecodeVerify(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey)
	require.NoError(t, err)

	compact, err := builder.Sign(jose.BuilderClaims{
		RegisteredClaims: jose.RegisteredClaims{
			Subject:  "user-42",
			Audience: []string{"api"},
		},
	})
	require.NoError(t, err)

	token, err := jose.Decode(compact)
	require.NoError(t, err)

	assert.Equal(t, "HS256", token.Algorithm())
	assert.Equal(t, "JWT", token.Type())
	assert.Equal(t, "user-42", token.Subject())
	assert.Equal(t, []string{"api"}, token.Audiences())

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.NoError(t, verifier.Verify(token))
}

func TestBuilderFillsDefaults(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey)
	require.NoError(t, err)

	before := time.Now().Add(-time.Second)
	compact, err := builder.Sign(jose.BuilderClaims{})
	require.NoError(t, err)

	token, err := jose.Decode(compact)
	require.NoError(t, err)

	assert.Equal(t, "jose", token.Issuer())
	assert.NotEmpty(t, token.ID(), "jti is generated when absent")
	assert.False(t, token.IssuedAt().Before(before))
	assert.True(t, token.ExpiresAt().After(token.IssuedAt()))
}

func TestBuilderHonorsExplicitClaims(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey, jose.BuilderConfig{
		Algorithm: "HS384",
		Issuer:    "auth.example",
		TTL:       time.Hour,
	})
	require.NoError(t, err)

	issued := time.Unix(1700000000, 0)
	compact, err := builder.Sign(jose.BuilderClaims{
		RegisteredClaims: jose.RegisteredClaims{
			Issuer:    "override.example",
			IssuedAt:  jose.NewNumericDate(issued),
			ExpiresAt: jose.NewNumericDate(issued.Add(time.Minute)),
			ID:        "fixed-id",
		},
	})
	require.NoError(t, err)

	token, err := jose.Decode(compact)
	require.NoError(t, err)

	assert.Equal(t, "HS384", token.Algorithm())
	assert.Equal(t, "override.example", token.Issuer())
	assert.Equal(t, "fixed-id", token.ID())
	assert.Equal(t, issued.UTC(), token.IssuedAt())
	assert.Equal(t, issued.Add(time.Minute).UTC(), token.ExpiresAt())
}

func TestNewBuilderRejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := jose.NewBuilder([]byte("too-short"))
	assert.ErrorIs(t, err, jose.ErrInvalidKey)
}

func TestNewBuilderRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := jose.NewBuilder(signingKey, jose.BuilderConfig{Algorithm: "RS256"})
	assert.ErrorIs(t, err, jose.ErrInvalidConfig)
}

// ============================================================================
// VERIFICATION FAILURES
// ============================================================================

func TestVerifyWrongKey(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey)
	require.NoError(t, err)

	compact, err := builder.Sign(jose.BuilderClaims{})
	require.NoError(t, err)

	token, err := jose.Decode(compact)
	require.NoError(t, err)

	verifier, err := jose.NewVerifier(otherKey)
	require.NoError(t, err)
	assert.Error(t, verifier.Verify(token))
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey)
	require.NoError(t, err)

	compact, err := builder.Sign(jose.BuilderClaims{
		RegisteredClaims: jose.RegisteredClaims{Subject: "alice"},
	})
	require.NoError(t, err)

	token, err := jose.Decode(compact)
	require.NoError(t, err)

	forged := token.RawHeader() + "." + seg(`{"sub":"bob"}`) + "." + token.RawSignature()
	forgedToken, err := jose.Decode(forged)
	require.NoError(t, err, "tampering is invisible to the decoder")

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.Error(t, verifier.Verify(forgedToken))
}

func TestVerifyUnsignedToken(t *testing.T) {
	t.Parallel()

	token, err := jose.Decode(signedToken(`{"alg":"none"}`, `{"sub":"abc"}`, ""))
	require.NoError(t, err)

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.ErrorIs(t, verifier.Verify(token), jose.ErrNoSignature)
}

func TestVerifyNoneAlgorithmWithSignature(t *testing.T) {
	t.Parallel()

	token, err := jose.Decode(signedToken(`{"alg":"none"}`, `{"sub":"abc"}`, "bogus"))
	require.NoError(t, err)

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.Error(t, verifier.Verify(token), "alg none never verifies")
}

func TestVerifyEncryptedToken(t *testing.T) {
	t.Parallel()

	encrypted := seg(`{"alg":"dir","enc":"A256GCM"}`) + ".ek.iv.ct.tag."
	token, err := jose.Decode(encrypted)
	require.NoError(t, err)

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.ErrorIs(t, verifier.Verify(token), jose.ErrTokenEncrypted)
}

func TestVerifyNilToken(t *testing.T) {
	t.Parallel()

	verifier, err := jose.NewVerifier(signingKey)
	require.NoError(t, err)
	assert.ErrorIs(t, verifier.Verify(nil), jose.ErrEmptyToken)
}

func TestNewVerifierRejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := jose.NewVerifier([]byte("short"))
	assert.ErrorIs(t, err, jose.ErrInvalidKey)
}

// ============================================================================
// CONVENIENCE API
// ============================================================================

func TestDecodeAndVerify(t *testing.T) {
	t.Parallel()

	builder, err := jose.NewBuilder(signingKey)
	require.NoError(t, err)

	compact, err := builder.Sign(jose.BuilderClaims{
		RegisteredClaims: jose.RegisteredClaims{Subject: "user-1"},
	})
	require.NoError(t, err)

	token, err := jose.DecodeAndVerify(compact, signingKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token.Subject())

	_, err = jose.DecodeAndVerify(compact, otherKey)
	assert.Error(t, err)
}
