package wire

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	version   byte = 1
	kindEntry byte = 1

	hdrLen = 4 + 1 + 1 + 8 + 4
)

var (
	ErrCorrupt  = errors.New("b64: corrupt entry")
	ErrChecksum = errors.New("b64: entry checksum mismatch")
	magic4      = [...]byte{'B', '6', '4', 'E'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=entry) | sum(u64 be, xxhash64 of payload) | vlen(u32 be) | payload(vlen)
func EncodeEntry(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], xxhash.Sum64(payload))
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry validates the frame and returns a subslice of b holding the
// payload. Bytes past the declared payload are treated as corruption.
func DecodeEntry(b []byte) ([]byte, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return nil, ErrCorrupt
	}

	off := 6

	sum := binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off {
		return nil, ErrCorrupt
	}

	payload := b[off : off+vlen]
	if xxhash.Sum64(payload) != sum {
		return nil, ErrChecksum
	}
	return payload, nil
}
