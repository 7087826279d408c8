package jose

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cybergodev/jose/internal/jsonval"
)

// NumericDate represents a JSON numeric date value as specified in RFC 7519.
// It stores time as Unix timestamp (seconds since epoch) for token
// compatibility.
type NumericDate struct {
	time.Time
}

// NewNumericDate creates a new NumericDate from time.Time
func NewNumericDate(t time.Time) NumericDate {
	return NumericDate{Time: t}
}

// MarshalJSON implements json.Marshaler interface
func (date *NumericDate) MarshalJSON() ([]byte, error) {
	if date.Time.IsZero() {
		return []byte("null"), nil
	}
	return fmt.Appendf(nil, "%d", date.Unix()), nil
}

// UnmarshalJSON implements json.Unmarshaler interface
func (date *NumericDate) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		date.Time = time.Time{}
		return nil
	}

	s := string(b)
	if s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		date.Time = time.Time{}
		return nil
	}

	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid time format: expected unix timestamp, got %s", s)
	}
	if unix < 0 || unix > 253402300799 {
		return fmt.Errorf("invalid unix timestamp: %d", unix)
	}
	date.Time = time.Unix(unix, 0).UTC()
	return nil
}

// numericTime converts a numeric-seconds-since-epoch claim value to a
// time.Time. Absent or non-numeric values yield the zero time; numeric
// strings are tolerated.
func numericTime(v jsonval.Value) time.Time {
	switch v.Kind() {
	case jsonval.Int, jsonval.Int64:
		return time.Unix(v.Int(), 0).UTC()
	case jsonval.Double:
		sec, frac := int64(v.Float()), v.Float()
		return time.Unix(sec, int64((frac-float64(sec))*float64(time.Second))).UTC()
	case jsonval.String:
		if unix, err := strconv.ParseInt(v.Str(), 10, 64); err == nil {
			return time.Unix(unix, 0).UTC()
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
