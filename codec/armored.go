package codec

import (
	"fmt"

	"github.com/unkn0wn-root/b64"
)

// Armored turns a binary codec into a text codec: Encode serializes with
// Inner and base64-encodes the result with Encoding; Decode reverses both
// steps. A nil Encoding means b64.StdEncoding.
type Armored[V any] struct {
	Inner    Codec[V]
	Encoding *b64.Codec
}

var _ Codec[[]byte] = Armored[[]byte]{}

func (c Armored[V]) enc() *b64.Codec {
	if c.Encoding == nil {
		return b64.StdEncoding
	}
	return c.Encoding
}

func (c Armored[V]) Encode(v V) ([]byte, error) {
	raw, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return c.enc().Encode(raw), nil
}

func (c Armored[V]) Decode(b []byte) (V, error) {
	raw, err := c.enc().Decode(b)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("armor: %w", err)
	}
	return c.Inner.Decode(raw)
}

// Base64 is the plain byte codec: Encode is base64 encoding, Decode is base64
// decoding.
type Base64 struct {
	Encoding *b64.Codec
}

var _ Codec[[]byte] = Base64{}

func (c Base64) Encode(b []byte) ([]byte, error) {
	return Armored[[]byte]{Inner: Bytes{}, Encoding: c.Encoding}.Encode(b)
}

func (c Base64) Decode(b []byte) ([]byte, error) {
	return Armored[[]byte]{Inner: Bytes{}, Encoding: c.Encoding}.Decode(b)
}
