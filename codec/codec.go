// Package codec holds value codecs (V <-> []byte) and the base64 armor that
// turns any of them into printable text.
//
//	c := codec.Armored[User]{Inner: codec.JSON[User]{}, Encoding: b64.RawURLEncoding}
//	text, _ := c.Encode(u) // printable, URL safe
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
