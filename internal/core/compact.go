package core

import "strings"

// Segment counts for the two compact serialization forms.
const (
	SignedSegments    = 3 // header.payload.signature
	EncryptedSegments = 6 // header.encryptedKey.iv.ciphertext.authTag (5 dots)

	SignedDelimiters    = SignedSegments - 1
	EncryptedDelimiters = EncryptedSegments - 1
)

// CountDelimiters counts '.' occurrences in s, stopping as soon as the count
// exceeds the largest valid value. Anything past that point cannot change the
// dispatch decision.
func CountDelimiters(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			count++
			if count > EncryptedDelimiters {
				return count
			}
		}
	}
	return count
}

// SplitSegments splits s on '.' preserving empty segments. An empty
// signature segment is valid compact serialization, not an error.
func SplitSegments(s string) []string {
	return strings.Split(s, ".")
}
