package b64

// Encode returns the encoding of src. It never fails.
func (c *Codec) Encode(src []byte) []byte {
	dst := make([]byte, c.EncodedLen(len(src)))
	c.encodeTo(dst, src)
	return dst
}

// EncodeToString returns the encoding of src as a string.
func (c *Codec) EncodeToString(src []byte) string {
	return string(c.Encode(src))
}

// AppendEncode appends the encoding of src to dst and returns the extended slice.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	n := c.EncodedLen(len(src))
	off := len(dst)
	if cap(dst)-off < n {
		grown := make([]byte, off, off+n)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:off+n]
	c.encodeTo(dst[off:], src)
	return dst
}

// encodeTo writes exactly EncodedLen(len(src)) bytes to dst.
func (c *Codec) encodeTo(dst, src []byte) {
	di, si := 0, 0
	n := len(src) / 3 * 3
	for si < n {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])

		dst[di+0] = c.encode[val>>18&0x3F]
		dst[di+1] = c.encode[val>>12&0x3F]
		dst[di+2] = c.encode[val>>6&0x3F]
		dst[di+3] = c.encode[val&0x3F]

		si += 3
		di += 4
	}

	remain := len(src) - si
	if remain == 0 {
		return
	}

	val := uint(src[si]) << 16
	if remain == 2 {
		val |= uint(src[si+1]) << 8
	}
	dst[di+0] = c.encode[val>>18&0x3F]
	dst[di+1] = c.encode[val>>12&0x3F]

	if remain == 2 {
		dst[di+2] = c.encode[val>>6&0x3F]
		if c.padded() {
			dst[di+3] = byte(c.padding)
		}
		return
	}
	if c.padded() {
		dst[di+2] = byte(c.padding)
		dst[di+3] = byte(c.padding)
	}
}
