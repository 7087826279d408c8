package jsonval

import (
	"encoding/json"
	"math"
)

// Kind identifies the variant stored in a Value. The variant is decided once
// at parse time; callers switch on Kind instead of doing runtime type checks
// on interface values.
type Kind int

const (
	Invalid Kind = iota // zero Value, e.g. an absent object member
	Null
	Bool
	Int   // integer within the signed 32-bit range
	Int64 // integer outside the signed 32-bit range
	Double
	String
	Object
	Array
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int64:
		return "int64"
	case Double:
		return "double"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a single parsed JSON node. Values are read-only after parsing;
// sharing them between tokens (e.g. through the header cache) is safe.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	num  string // original numeric literal, kept for faithful re-serialization
	b    bool
	obj  *Obj
	arr  []Value
}

// Kind returns the variant stored in the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is the zero Value (no variant at all,
// as opposed to an explicit JSON null).
func (v Value) IsZero() bool { return v.kind == Invalid }

// Str returns the string payload. Zero for non-string values.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.str
}

// Int returns the integer payload. Zero for non-integer values.
func (v Value) Int() int64 {
	if v.kind != Int && v.kind != Int64 {
		return 0
	}
	return v.i64
}

// Float returns the numeric payload as a float64. Integer values are
// converted; zero for non-numeric values.
func (v Value) Float() float64 {
	switch v.kind {
	case Double:
		return v.f64
	case Int, Int64:
		return float64(v.i64)
	default:
		return 0
	}
}

// Bool returns the boolean payload. False for non-boolean values.
func (v Value) Bool() bool {
	if v.kind != Bool {
		return false
	}
	return v.b
}

// Object returns the object payload, or nil for non-object values.
func (v Value) Object() *Obj {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Items returns the array elements, or nil for non-array values. The
// returned slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// FitsInt32 reports whether an integer value lies within the signed 32-bit
// range. Always false for non-integer values.
func (v Value) FitsInt32() bool {
	if v.kind != Int && v.kind != Int64 {
		return false
	}
	return v.i64 >= math.MinInt32 && v.i64 <= math.MaxInt32
}

// Compact returns the canonical compact JSON text of the value, with object
// key order preserved as parsed and no added whitespace.
func (v Value) Compact() string {
	return string(v.appendCompact(nil))
}

func (v Value) appendCompact(dst []byte) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int, Int64, Double:
		// The original literal round-trips exactly, including exponent forms.
		return append(dst, v.num...)
	case String:
		return appendQuoted(dst, v.str)
	case Object:
		return v.obj.appendCompact(dst)
	case Array:
		dst = append(dst, '[')
		for i, elem := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.appendCompact(dst)
		}
		return append(dst, ']')
	default:
		return append(dst, "null"...)
	}
}

func appendQuoted(dst []byte, s string) []byte {
	// encoding/json escaping keeps the output byte-compatible with what the
	// rest of the ecosystem produces for the same string.
	b, err := json.Marshal(s)
	if err != nil {
		return append(dst, `""`...)
	}
	return append(dst, b...)
}
