package jose

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cybergodev/jose/internal/core"
	"github.com/cybergodev/jose/internal/jsonval"
)

// Decoder decodes compact-serialized tokens. It owns a header cache and a
// diagnostics logger; decoding itself is synchronous, CPU-only work, and a
// Decoder is safe for concurrent use.
type Decoder struct {
	cache          *HeaderCache
	logger         *slog.Logger
	maxTokenLength int
	localIssuer    string
}

// NewDecoder creates a Decoder with optional configuration.
func NewDecoder(config ...Config) (*Decoder, error) {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.MaxTokenLength == 0 {
		cfg.MaxTokenLength = core.MaxTokenLength
	}
	if cfg.HeaderCache == nil {
		cfg.HeaderCache = NewHeaderCache()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.LocalIssuer == "" {
		cfg.LocalIssuer = LocalIssuer
	}

	return &Decoder{
		cache:          cfg.HeaderCache,
		logger:         cfg.Logger,
		maxTokenLength: cfg.MaxTokenLength,
		localIssuer:    cfg.LocalIssuer,
	}, nil
}

// Cache returns the header cache the decoder uses.
func (d *Decoder) Cache() *HeaderCache { return d.cache }

// Decode splits input on '.', dispatches on delimiter count between the
// signed and encrypted compact forms, decodes the header (and, for signed
// tokens, the payload) as base64url JSON objects, and stores the remaining
// segments verbatim.
//
// Decode either fully succeeds or fails with a structured error; a Token is
// never returned partially populated. The only shared state it touches is
// the header cache insert.
func (d *Decoder) Decode(input string) (*Token, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyToken
	}
	if len(input) > d.maxTokenLength {
		return nil, ErrTokenTooLarge
	}

	delimiters := core.CountDelimiters(input)
	if delimiters != core.SignedDelimiters && delimiters != core.EncryptedDelimiters {
		return nil, &MalformedTokenError{Input: input, Delimiters: delimiters}
	}

	d.logger.Debug("decoding compact token",
		slog.Int("delimiters", delimiters),
		slog.Bool("encrypted", delimiters == core.EncryptedDelimiters))

	segments := core.SplitSegments(input)

	header, cached, err := d.decodeHeader(segments[0])
	if err != nil {
		return nil, &MalformedHeaderError{Segment: segments[0], Input: input, Err: err}
	}
	if cached {
		d.logger.Debug("header cache hit")
	}
	if cty := header.Str(headerContentType); cty != "" {
		d.logger.Debug("content type detected", slog.String("cty", cty))
	}

	token := &Token{
		header:      header,
		rawData:     input,
		rawHeader:   segments[0],
		localIssuer: d.localIssuer,
	}

	if delimiters == core.SignedDelimiters {
		payload, err := core.DecodeObjectSegment(segments[1])
		if err != nil {
			return nil, &MalformedPayloadError{Segment: segments[1], Input: input, Err: err}
		}
		token.payload = payload
		token.rawPayload = segments[1]
		token.rawSignature = segments[2]
		return token, nil
	}

	// Encrypted form: the crypto segments stay opaque. The payload remains
	// encrypted and is populated by a later decryption step.
	token.encrypted = true
	token.rawEncryptedKey = segments[1]
	token.rawInitializationVector = segments[2]
	token.rawCiphertext = segments[3]
	token.rawAuthenticationTag = segments[4]
	return token, nil
}

// decodeHeader resolves the header segment through the cache. On a miss the
// freshly parsed object is inserted with insert-if-absent semantics, so
// concurrent decoders of the same segment converge on one parsed header.
func (d *Decoder) decodeHeader(segment string) (obj *jsonval.Obj, cached bool, err error) {
	if hit, ok := d.cache.get(segment); ok {
		return hit, true, nil
	}

	parsed, err := core.DecodeObjectSegment(segment)
	if err != nil {
		return nil, false, err
	}
	return d.cache.getOrAdd(segment, parsed), false, nil
}
