package b64

import (
	"bytes"
	"errors"
	"testing"
	"testing/quick"
)

var allCodecs = []*Codec{StdEncoding, URLEncoding, RawStdEncoding, RawURLEncoding}

// Property: Decode(Encode(x)) == x for every predefined codec, strict or not.
func TestProperty_RoundTrip(t *testing.T) {
	for _, c := range allCodecs {
		for _, cc := range []*Codec{c, c.Strict()} {
			property := func(data []byte) bool {
				decoded, err := cc.Decode(cc.Encode(data))
				if err != nil {
					t.Logf("decode failed: %v", err)
					return false
				}
				return bytes.Equal(decoded, data)
			}
			if err := quick.Check(property, nil); err != nil {
				t.Error(err)
			}
		}
	}
}

// Property: padded output is 4*ceil(n/3) long; raw output has no pad symbols.
func TestProperty_PaddingDeterminism(t *testing.T) {
	property := func(data []byte) bool {
		padded := StdEncoding.Encode(data)
		if len(padded) != 4*((len(data)+2)/3) {
			return false
		}
		raw := RawStdEncoding.Encode(data)
		if bytes.IndexByte(raw, '=') >= 0 {
			return false
		}
		return len(raw) == (len(data)*8+5)/6 && bytes.Equal(raw, bytes.TrimRight(padded, "="))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: \r and \n inserted anywhere in a padded encoding are ignored.
func TestProperty_LineBreakTolerance(t *testing.T) {
	property := func(data []byte, at []uint16, crs []bool) bool {
		enc := StdEncoding.Encode(data)
		for i, pos := range at {
			p := int(pos) % (len(enc) + 1)
			lb := byte('\n')
			if i < len(crs) && crs[i] {
				lb = '\r'
			}
			enc = append(enc[:p], append([]byte{lb}, enc[p:]...)...)
		}
		decoded, err := StdEncoding.Decode(enc)
		if err != nil {
			t.Logf("decode %q failed: %v", enc, err)
			return false
		}
		return bytes.Equal(decoded, data)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: setting an unused low bit in the final partial group is accepted
// by lenient codecs and rejected by strict ones.
func TestProperty_StrictRejection(t *testing.T) {
	for _, c := range []*Codec{StdEncoding, RawURLEncoding} {
		property := func(data []byte) bool {
			if len(data)%3 == 0 {
				return true // no partial group
			}
			enc := c.Encode(data)
			last := len(enc) - 1
			for enc[last] == byte(c.Padding()) {
				last--
			}
			enc[last] = c.encode[c.decode[enc[last]]|1]

			lenient, err := c.Decode(enc)
			if err != nil || !bytes.Equal(lenient, data) {
				t.Logf("lenient decode of %q: %q %v", enc, lenient, err)
				return false
			}
			_, err = c.Strict().Decode(enc)
			return errors.Is(err, ErrCorruptInput)
		}
		if err := quick.Check(property, nil); err != nil {
			t.Error(err)
		}
	}
}

// Property: decoding never panics and never reports more output than
// DecodedLen, whatever the input.
func TestProperty_DecodeArbitraryInput(t *testing.T) {
	for _, c := range allCodecs {
		property := func(data []byte) bool {
			out, err := c.Decode(data)
			if err != nil {
				var ce *CorruptInputError
				return errors.As(err, &ce) && ce.Offset >= 0 && ce.Offset <= int64(len(data))
			}
			return len(out) <= c.DecodedLen(len(data))
		}
		if err := quick.Check(property, nil); err != nil {
			t.Error(err)
		}
	}
}
