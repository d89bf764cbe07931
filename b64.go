package b64

import (
	"fmt"
)

const (
	// EncodeStd is the standard alphabet of RFC 4648 section 4.
	EncodeStd = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// EncodeURL is the URL and filename safe alphabet of RFC 4648 section 5.
	EncodeURL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

const (
	StdPadding rune = '=' // standard padding byte
	NoPadding  rune = -1  // no padding: output is trimmed, input must not contain a pad
)

const (
	invalid byte = 0xFF
	cr      byte = '\r'
	lf      byte = '\n'
)

// Codec is an immutable base64 configuration. The zero value is NOT ready to
// use. Construct with New or Must.
type Codec struct {
	encode  [64]byte
	decode  [256]byte
	padding rune
	strict  bool
}

var (
	StdEncoding    = Must(EncodeStd, StdPadding, false)
	URLEncoding    = Must(EncodeURL, StdPadding, false)
	RawStdEncoding = Must(EncodeStd, NoPadding, false)
	RawURLEncoding = Must(EncodeURL, NoPadding, false)
)

// New builds a codec for the given 64-byte alphabet.
//   - padding is a single byte value or NoPadding.
//   - strict rejects encodings with non-zero unused bits in the final group.
//
// Errors wrap ErrInvalidAlphabet or ErrInvalidPadding.
func New(alphabet string, padding rune, strict bool) (*Codec, error) {
	if len(alphabet) != 64 {
		return nil, fmt.Errorf("%w: length %d, want 64", ErrInvalidAlphabet, len(alphabet))
	}
	if err := checkPadding(padding); err != nil {
		return nil, err
	}

	c := &Codec{padding: padding, strict: strict}
	for i := range c.decode {
		c.decode[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		s := alphabet[i]
		switch {
		case s == cr || s == lf:
			return nil, fmt.Errorf("%w: line break at index %d", ErrInvalidAlphabet, i)
		case padding != NoPadding && rune(s) == padding:
			return nil, fmt.Errorf("%w: contains padding %q at index %d", ErrInvalidAlphabet, s, i)
		case c.decode[s] != invalid:
			return nil, fmt.Errorf("%w: duplicate symbol %q at index %d", ErrInvalidAlphabet, s, i)
		}
		c.encode[i] = s
		c.decode[s] = byte(i)
	}
	return c, nil
}

// Must is like New but panics on error.
// Meant for package-level variables.
func Must(alphabet string, padding rune, strict bool) *Codec {
	c, err := New(alphabet, padding, strict)
	if err != nil {
		panic(err)
	}
	return c
}

func checkPadding(p rune) error {
	switch {
	case p == NoPadding:
		return nil
	case p < 0 || p > 0xFF:
		return fmt.Errorf("%w: %d does not fit in a byte", ErrInvalidPadding, p)
	case p == rune(cr) || p == rune(lf):
		return fmt.Errorf("%w: line break %q", ErrInvalidPadding, p)
	}
	return nil
}

// WithPadding returns a copy of c using padding p. The alphabet and strict
// flag are unchanged.
func (c *Codec) WithPadding(p rune) (*Codec, error) {
	return New(c.Alphabet(), p, c.strict)
}

// Strict returns a copy of c that rejects non-canonical encodings.
func (c *Codec) Strict() *Codec {
	cp := *c
	cp.strict = true
	return &cp
}

// Alphabet returns the 64 symbols in value order.
func (c *Codec) Alphabet() string { return string(c.encode[:]) }

// Padding returns the padding byte, or NoPadding.
func (c *Codec) Padding() rune { return c.padding }

// IsStrict reports whether non-canonical trailing bits are rejected.
func (c *Codec) IsStrict() bool { return c.strict }

func (c *Codec) padded() bool { return c.padding != NoPadding }

// EncodedLen returns the length in bytes of the encoding of n source bytes.
func (c *Codec) EncodedLen(n int) int {
	if !c.padded() {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of encoded input. Line breaks in the input only
// lower the real size.
func (c *Codec) DecodedLen(n int) int {
	if !c.padded() {
		return n * 6 / 8
	}
	return n / 4 * 3
}
