package jose

import "github.com/cybergodev/jose/internal/jsonval"

// LocalIssuer is the issuer attributed to claims when the payload carries no
// issuer claim of its own.
const LocalIssuer = "LOCAL AUTHORITY"

// Claim is a single named attribute extracted from the token payload, with
// its string-serialized value, a value kind tag, and issuer attribution.
type Claim struct {
	Name           string
	Value          string
	Kind           ValueKind
	Issuer         string
	OriginalIssuer string
}

// materializeClaims walks the payload object in member order and produces a
// flat claim sequence. The walk is pure: invoking it twice on the same
// payload yields identical sequences.
//
// Arrays are recursed exactly one level deep. An array nested inside an
// array is captured as opaque compact JSON text rather than unrolled; this
// matches the established materialization behavior and must not be "fixed"
// by recursing further.
func materializeClaims(payload *jsonval.Obj, issuer string) []Claim {
	if payload == nil {
		return nil
	}

	claims := make([]Claim, 0, payload.Len())
	payload.Range(func(name string, v jsonval.Value) bool {
		switch v.Kind() {
		case jsonval.Null:
			claims = append(claims, newClaim(name, "", ValueKindJSONNull, issuer))
		case jsonval.String:
			claims = append(claims, newClaim(name, v.Str(), ValueKindString, issuer))
		default:
			claims = appendFromValue(claims, name, v, issuer)
		}
		return true
	})
	return claims
}

func appendFromValue(claims []Claim, name string, v jsonval.Value, issuer string) []Claim {
	switch v.Kind() {
	case jsonval.Object:
		return append(claims, newClaim(name, v.Compact(), ValueKindJSON, issuer))
	case jsonval.Array:
		for _, elem := range v.Items() {
			switch elem.Kind() {
			case jsonval.Object:
				claims = append(claims, newClaim(name, elem.Compact(), ValueKindJSON, issuer))
			case jsonval.Array:
				claims = append(claims, newClaim(name, elem.Compact(), ValueKindJSONArray, issuer))
			default:
				claims = appendScalar(claims, name, elem, issuer)
			}
		}
		return claims
	default:
		return appendScalar(claims, name, v, issuer)
	}
}

func appendScalar(claims []Claim, name string, v jsonval.Value, issuer string) []Claim {
	if v.Kind() == jsonval.String {
		return append(claims, newClaim(name, v.Str(), ValueKindString, issuer))
	}
	return append(claims, newClaim(name, v.Compact(), classifyValue(v), issuer))
}

func newClaim(name, value string, kind ValueKind, issuer string) Claim {
	return Claim{
		Name:           name,
		Value:          value,
		Kind:           kind,
		Issuer:         issuer,
		OriginalIssuer: issuer,
	}
}
