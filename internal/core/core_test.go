package core

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeSegment(t *testing.T) {
	segment := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))

	raw, err := DecodeSegment(segment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"alg":"none"}` {
		t.Errorf("decoded mismatch: %s", raw)
	}
}

func TestDecodeSegmentToleratesPadding(t *testing.T) {
	padded := base64.URLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	if !strings.Contains(padded, "=") {
		t.Fatal("test input should carry padding")
	}

	raw, err := DecodeSegment(padded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"alg":"none"}` {
		t.Errorf("decoded mismatch: %s", raw)
	}
}

func TestDecodeSegmentErrors(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"empty", ""},
		{"invalid characters", "not!base64url"},
		{"plus sign", "ab+cd"},
		{"slash", "ab/cd"},
		{"too large", strings.Repeat("A", maxSegmentLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSegment(tt.segment); err == nil {
				t.Errorf("expected error for %q", tt.name)
			}
		})
	}
}

func TestDecodeObjectSegment(t *testing.T) {
	segment := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	obj, err := DecodeObjectSegment(segment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := obj.Str("alg"); got != "HS256" {
		t.Errorf("alg: got %q", got)
	}

	// Valid base64url but not a JSON object.
	segment = base64.RawURLEncoding.EncodeToString([]byte(`[1,2]`))
	if _, err := DecodeObjectSegment(segment); err == nil {
		t.Error("expected error for non-object segment")
	}
}

func TestEncodeSegmentRoundTrip(t *testing.T) {
	data := []byte(`{"sub":"abc"}`)
	decoded, err := DecodeSegment(EncodeSegment(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != string(data) {
		t.Errorf("round trip mismatch: %s", decoded)
	}
}

func TestCountDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 0},
		{"a.b.c", 2},
		{"a.b.c.d", 3},
		{"a.b.c.d.e.f", 5},
		{".....", 5},
		{"........", 6}, // capped past the largest valid count
	}

	for _, tt := range tests {
		if got := CountDelimiters(tt.input); got != tt.want {
			t.Errorf("CountDelimiters(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSplitSegmentsPreservesEmpty(t *testing.T) {
	segments := SplitSegments("a.b.")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[2] != "" {
		t.Errorf("expected empty signature segment, got %q", segments[2])
	}
}
