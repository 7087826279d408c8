package jose

import "sync"

// The package-level functions front one shared Decoder whose header cache
// lives for the process lifetime. Applications that want isolated caches or
// custom logging construct their own Decoder instead.
var defaultDecoder = sync.OnceValue(func() *Decoder {
	d, err := NewDecoder()
	if err != nil {
		// DefaultConfig always validates; reaching this is a programming error.
		panic("jose: building default decoder: " + err.Error())
	}
	return d
})

// Decode decodes a compact-serialized token using the shared default
// decoder.
func Decode(input string) (*Token, error) {
	return defaultDecoder().Decode(input)
}

// DecodeAndVerify decodes a compact-serialized signed token and verifies
// its signature with key. The key must be at least 32 bytes long.
func DecodeAndVerify(input string, key []byte) (*Token, error) {
	token, err := Decode(input)
	if err != nil {
		return nil, err
	}

	verifier, err := NewVerifier(key)
	if err != nil {
		return nil, err
	}
	if err := verifier.Verify(token); err != nil {
		return nil, err
	}
	return token, nil
}
