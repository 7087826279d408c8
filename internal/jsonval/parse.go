package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseObject parses data as a single JSON object, preserving member order.
// Anything other than exactly one top-level object is an error.
func ParseObject(data []byte) (*Obj, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if v.Kind() != Object {
		return nil, fmt.Errorf("expected JSON object, got %s", v.Kind())
	}
	return v.Object(), nil
}

// Parse parses data as a single JSON value. Trailing non-whitespace input is
// an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return Value{kind: String, str: t}, nil
	case json.Number:
		return parseNumber(t)
	case bool:
		return Value{kind: Bool, b: t}, nil
	case nil:
		return Value{kind: Null}, nil
	default:
		return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := &Obj{values: make(map[string]Value)}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}

		v, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, v)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: Object, obj: obj}, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var elems []Value

	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: Array, arr: elems}, nil
}

// parseNumber decides the numeric variant once. Literals with a fraction or
// exponent are doubles; plain integers become Int when they fit the signed
// 32-bit range, Int64 otherwise, and fall back to double on int64 overflow.
func parseNumber(n json.Number) (Value, error) {
	s := n.String()

	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return Value{kind: Double, f64: f, num: s}, nil
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", s, ferr)
		}
		return Value{kind: Double, f64: f, num: s}, nil
	}

	kind := Int64
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		kind = Int
	}
	return Value{kind: kind, i64: i, num: s}, nil
}
