package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes proto messages. T is usually a pointer type such as
// *mypb.User; ctor returns a fresh message for each Decode.
type Protobuf[T proto.Message] struct {
	ctor func() T
	opts proto.MarshalOptions
}

// NewProtobuf builds a Protobuf codec. Deterministic marshaling is enabled so
// the armored text of equal messages is equal too.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{ctor: ctor, opts: proto.MarshalOptions{Deterministic: true}}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return c.opts.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.ctor()
	err := proto.Unmarshal(b, m)
	return m, err
}
