// Package jose decodes compact-serialized security tokens (JWS and JWE
// compact forms) into a structured in-memory representation: an ordered
// header object, an ordered claims payload, and the raw segments needed by
// signature verification or decryption layers.
//
// Decoding is structural only. Signature verification is available as a
// separate step (Verifier), and claim semantics are never enforced during
// decoding: absent or oddly-typed claims yield typed defaults instead of
// errors.
//
// Basic usage:
//
//	token, err := jose.Decode(tokenString)
//	if err != nil {
//		// structurally malformed input
//	}
//
//	sub := token.Subject()
//	for _, claim := range token.Claims() {
//		fmt.Println(claim.Name, claim.Value, claim.Kind)
//	}
//
// Decoders share nothing unless told to: each Decoder owns its header cache,
// and the package-level Decode function fronts one shared Decoder whose
// cache lives for the process lifetime.
package jose
