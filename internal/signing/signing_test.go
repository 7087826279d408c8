package signing

import (
	"bytes"
	"testing"
)

var testKey = []byte("Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-gH9~jK2#")

func TestGetMethod(t *testing.T) {
	tests := []struct {
		alg       string
		wantError bool
	}{
		{"HS256", false},
		{"HS384", false},
		{"HS512", false},
		{"hs256", false}, // normalized
		{" HS256 ", false},
		{"none", true},
		{"", true},
		{"RS256", true},
	}

	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			method, err := GetMethod(tt.alg)
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error for %q", tt.alg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if method == nil {
				t.Fatal("expected method")
			}
		})
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			method, err := GetMethod(alg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			signature, err := method.Sign("header.payload", testKey)
			if err != nil {
				t.Fatalf("sign failed: %v", err)
			}

			if err := method.Verify("header.payload", signature, testKey); err != nil {
				t.Errorf("verify failed: %v", err)
			}
		})
	}
}

func TestVerifyRejectsTamperedInput(t *testing.T) {
	method, err := GetMethod("HS256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signature, err := method.Sign("header.payload", testKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if err := method.Verify("header.tampered", signature, testKey); err == nil {
		t.Error("expected tampered input to fail verification")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	method, err := GetMethod("HS256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signature, err := method.Sign("header.payload", testKey)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	otherKey := []byte("Qw3&rT6*yU9(iO2)pA5@sD8#fG1$hJ4%kL7!zX0-cV5~bN8+")
	if err := method.Verify("header.payload", signature, otherKey); err == nil {
		t.Error("expected wrong key to fail verification")
	}
}

func TestRejectsShortAndWeakKeys(t *testing.T) {
	method, err := GetMethod("HS256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := method.Sign("header.payload", []byte("short")); err == nil {
		t.Error("expected short key to be rejected")
	}

	weak := bytes.Repeat([]byte("a"), 32)
	if _, err := method.Sign("header.payload", weak); err == nil {
		t.Error("expected weak key to be rejected")
	}
}
