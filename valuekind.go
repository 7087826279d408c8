package jose

import "github.com/cybergodev/jose/internal/jsonval"

// ValueKind tags the underlying JSON type of a claim value.
type ValueKind string

const (
	ValueKindString    ValueKind = "string"
	ValueKindInteger   ValueKind = "integer"
	ValueKindInteger64 ValueKind = "integer64"
	ValueKindBoolean   ValueKind = "boolean"
	ValueKindDouble    ValueKind = "double"
	ValueKindJSONNull  ValueKind = "null"
	ValueKindJSON      ValueKind = "json"
	ValueKindJSONArray ValueKind = "json_array"
)

// classifyValue maps a parsed JSON node to its claim value kind. The
// function is total: every node variant has a kind, and anything outside the
// closed variant set falls back to the variant's own name so classification
// never fails.
//
// The one numerically load-bearing rule: a 64-bit integer that fits the
// signed 32-bit range classifies as integer, not integer64.
func classifyValue(v jsonval.Value) ValueKind {
	switch v.Kind() {
	case jsonval.Null:
		return ValueKindJSONNull
	case jsonval.String:
		return ValueKindString
	case jsonval.Bool:
		return ValueKindBoolean
	case jsonval.Double:
		return ValueKindDouble
	case jsonval.Int:
		return ValueKindInteger
	case jsonval.Int64:
		if v.FitsInt32() {
			return ValueKindInteger
		}
		return ValueKindInteger64
	case jsonval.Object:
		return ValueKindJSON
	case jsonval.Array:
		return ValueKindJSONArray
	default:
		return ValueKind(v.Kind().String())
	}
}
