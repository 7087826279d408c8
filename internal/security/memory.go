package security

import (
	"crypto/rand"
	"crypto/subtle"
	"runtime"
	"time"
)

// ZeroBytes overwrites a byte slice so key material does not linger in
// memory longer than needed.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// SecureCompare performs constant-time comparison of two byte slices.
func SecureCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// SecureRandomDelay sleeps for a small random duration on failure paths to
// blunt timing analysis of verification errors.
func SecureRandomDelay() {
	var delayBytes [1]byte
	rand.Read(delayBytes[:])
	delay := time.Duration(10+int(delayBytes[0])%90) * time.Microsecond
	time.Sleep(delay)
}

// IsWeakKey flags keys with obviously insufficient entropy: all-zero keys,
// a single repeated byte, or fewer than 30% unique bytes.
func IsWeakKey(key []byte) bool {
	if len(key) == 0 {
		return true
	}

	allZero := true
	for _, b := range key {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return true
	}

	if len(key) >= 4 {
		repeated := true
		for _, b := range key {
			if b != key[0] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}

	unique := make(map[byte]struct{}, len(key))
	for _, b := range key {
		unique[b] = struct{}{}
	}
	return float64(len(unique))/float64(len(key)) < 0.3
}
