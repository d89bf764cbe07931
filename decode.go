package b64

import "encoding/binary"

// Decode returns the bytes represented by src. Carriage returns and line
// feeds in src are ignored. On malformed input it returns a
// *CorruptInputError and no data.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, c.DecodedLen(len(src)))
	n, err := c.decodeTo(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeString returns the bytes represented by s.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return c.Decode([]byte(s))
}

// AppendDecode appends the decoding of src to dst. On error dst is returned
// unchanged.
func (c *Codec) AppendDecode(dst, src []byte) ([]byte, error) {
	need := c.DecodedLen(len(src))
	off := len(dst)
	buf := dst
	if cap(buf)-off < need {
		buf = make([]byte, off, off+need)
		copy(buf, dst)
	}
	n, err := c.decodeTo(buf[off:off+need], src)
	if err != nil {
		return dst, err
	}
	return buf[:off+n], nil
}

// decodeTo decodes src into dst, which must hold DecodedLen(len(src)) bytes,
// and returns the number of bytes written.
func (c *Codec) decodeTo(dst, src []byte) (int, error) {
	n, si := 0, 0

	for len(src)-si >= 4 && len(dst)-n >= 4 {
		if c.decodeFast(dst[n:], src[si:si+4]) {
			n += 3
			si += 4
			continue
		}
		next, w, err := c.decodeQuantum(dst[n:], src, si)
		if err != nil {
			return n, err
		}
		si = next
		n += w
	}

	for si < len(src) {
		next, w, err := c.decodeQuantum(dst[n:], src, si)
		if err != nil {
			return n, err
		}
		si = next
		n += w
	}
	return n, nil
}

// decodeFast decodes one clean 4-symbol group. It writes 4 bytes to dst (the
// last one is scratch) and reports false, writing nothing, if any byte is
// outside the alphabet.
func (c *Codec) decodeFast(dst, src []byte) bool {
	v, ok := assemble32(c.decode[src[0]], c.decode[src[1]], c.decode[src[2]], c.decode[src[3]])
	if !ok {
		return false
	}
	binary.BigEndian.PutUint32(dst, v)
	return true
}

// assemble32 packs four 6-bit values into the top 24 bits of a uint32.
// Valid values are < 64, so the OR equals 0xFF only if one of them is invalid.
func assemble32(n1, n2, n3, n4 byte) (uint32, bool) {
	if (n1 | n2 | n3 | n4) == invalid {
		return 0, false
	}
	return uint32(n1)<<26 | uint32(n2)<<20 | uint32(n3)<<14 | uint32(n4)<<8, true
}

// decodeQuantum decodes up to 4 symbols starting at src[si], handling line
// breaks, padding and a short final group. It returns the offset of the next
// unread byte and the number of bytes written to dst.
func (c *Codec) decodeQuantum(dst, src []byte, si int) (next, written int, err error) {
	var q [4]byte
	first, last := si, si // offsets of the first and last symbol seen
	j := 0

	for j < len(q) {
		if si == len(src) {
			if j == 0 {
				return si, 0, nil
			}
			if j == 1 || c.padded() {
				return si, 0, corrupt(first, "incomplete group of %d symbol(s)", j)
			}
			break
		}

		in := src[si]
		si++

		if v := c.decode[in]; v != invalid {
			if j == 0 {
				first = si - 1
			}
			last = si - 1
			q[j] = v
			j++
			continue
		}
		if in == cr || in == lf {
			continue
		}
		if rune(in) != c.padding {
			return si, 0, corrupt(si-1, "invalid symbol %q", in)
		}

		// padding ends the group
		if j < 2 {
			return si, 0, corrupt(si-1, "padding after %d symbol(s)", j)
		}
		if j == 2 {
			si = skipLineBreaks(src, si)
			if si == len(src) {
				return si, 0, corrupt(si, "missing second padding byte")
			}
			if rune(src[si]) != c.padding {
				return si, 0, corrupt(si, "expected padding, got %q", src[si])
			}
			si++
		}
		si = skipLineBreaks(src, si)
		if si < len(src) {
			return si, 0, corrupt(si, "data after padding")
		}
		break
	}

	val := uint32(q[0])<<18 | uint32(q[1])<<12 | uint32(q[2])<<6 | uint32(q[3])
	b0, b1, b2 := byte(val>>16), byte(val>>8), byte(val)

	switch j {
	case 4:
		dst[0], dst[1], dst[2] = b0, b1, b2
		return si, 3, nil
	case 3:
		if c.strict && b2 != 0 {
			return si, 0, corrupt(last, "non-zero trailing bits")
		}
		dst[0], dst[1] = b0, b1
		return si, 2, nil
	default:
		if c.strict && (b1 != 0 || b2 != 0) {
			return si, 0, corrupt(last, "non-zero trailing bits")
		}
		dst[0] = b0
		return si, 1, nil
	}
}

func skipLineBreaks(src []byte, si int) int {
	for si < len(src) && (src[si] == cr || src[si] == lf) {
		si++
	}
	return si
}
