// Package b64 implements a configurable base64 codec (RFC 4648).
// A Codec maps bytes to a 64-symbol alphabet and back, with optional padding
// and an optional strict mode that rejects non-canonical encodings.
//
// Components:
//   - Codec: immutable alphabet + padding + strict flag with prebuilt lookup tables.
//   - Encode: 3 bytes -> 4 symbols, last group padded (or trimmed when raw).
//   - Decode: fast path over clean 4-symbol groups, quantum decoder for
//     padding, line breaks and the final partial group.
//
// Predefined codecs:
//
//	StdEncoding     A-Z a-z 0-9 + /  padded with '='
//	URLEncoding     A-Z a-z 0-9 - _  padded with '='
//	RawStdEncoding  standard alphabet, no padding
//	RawURLEncoding  URL alphabet, no padding
//
// Usage:
//
//	s := b64.StdEncoding.EncodeToString([]byte("foo")) // "Zm9v"
//	b, err := b64.RawURLEncoding.DecodeString("Zg")    // "f"
//
//	custom, err := b64.New(alphabet, b64.NoPadding, true) // strict, raw
//
// Codecs are safe for concurrent use. \r and \n in decode input are skipped.
//
// Around the codec:
//   - codec.Armored[V]: value codec (JSON, CBOR, msgpack, protobuf) -> base64 text.
//   - store.Store[V]: typed values kept as armored, checksummed entries in a
//     byte Provider (Ristretto, BigCache, Redis).
//   - Logger / Hooks: pluggable observability for the store (log/*, sloghooks,
//     hooks/async).
//   - cmd/b64: encode / decode from the command line.
//
// Keys:
//
//	armor:<ns>:<key>  - store entries (long keys hashed)
package b64
