package b64

import (
	"bytes"
	"strings"
	"testing"
)

type pair struct {
	decoded, encoded string
}

var pairs = []pair{
	// RFC 3548 examples
	{"\x14\xfb\x9c\x03\xd9\x7e", "FPucA9l+"},
	{"\x14\xfb\x9c\x03\xd9", "FPucA9k="},
	{"\x14\xfb\x9c\x03", "FPucAw=="},

	// RFC 4648 examples
	{"", ""},
	{"f", "Zg=="},
	{"fo", "Zm8="},
	{"foo", "Zm9v"},
	{"foob", "Zm9vYg=="},
	{"fooba", "Zm9vYmE="},
	{"foobar", "Zm9vYmFy"},

	// Wikipedia examples
	{"sure.", "c3VyZS4="},
	{"sure", "c3VyZQ=="},
	{"sur", "c3Vy"},
	{"su", "c3U="},
	{"leasure.", "bGVhc3VyZS4="},
	{"easure.", "ZWFzdXJlLg=="},
	{"asure.", "YXN1cmUu"},
}

// urlRef maps a standard encoding to the URL alphabet.
func urlRef(s string) string {
	return strings.NewReplacer("+", "-", "/", "_").Replace(s)
}

func rawRef(s string) string {
	return strings.TrimRight(s, "=")
}

func TestEncodePairs(t *testing.T) {
	codecs := []struct {
		name string
		c    *Codec
		conv func(string) string
	}{
		{"std", StdEncoding, func(s string) string { return s }},
		{"url", URLEncoding, urlRef},
		{"raw-std", RawStdEncoding, rawRef},
		{"raw-url", RawURLEncoding, func(s string) string { return rawRef(urlRef(s)) }},
	}
	for _, cc := range codecs {
		for _, p := range pairs {
			want := cc.conv(p.encoded)
			if got := cc.c.EncodeToString([]byte(p.decoded)); got != want {
				t.Fatalf("%s: Encode(%q) = %q, want %q", cc.name, p.decoded, got, want)
			}
		}
	}
}

func TestEncodeRawHasNoPadding(t *testing.T) {
	if got := RawStdEncoding.EncodeToString([]byte("f")); got != "Zg" {
		t.Fatalf("got %q want %q", got, "Zg")
	}
	if got := RawStdEncoding.EncodeToString([]byte("fo")); got != "Zm8" {
		t.Fatalf("got %q want %q", got, "Zm8")
	}
}

func TestEncodeCustomPadding(t *testing.T) {
	c := Must(EncodeURL, '.', false)
	if got := c.EncodeToString([]byte("f")); got != "Zg.." {
		t.Fatalf("got %q want %q", got, "Zg..")
	}
	if got := c.EncodeToString([]byte("\xfb\xff")); got != "-_8." {
		t.Fatalf("got %q want %q", got, "-_8.")
	}
}

func TestEncodeAllByteValues(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	for _, c := range []*Codec{StdEncoding, URLEncoding, RawStdEncoding, RawURLEncoding} {
		enc := c.Encode(src)
		if len(enc) != c.EncodedLen(len(src)) {
			t.Fatalf("len=%d want %d", len(enc), c.EncodedLen(len(src)))
		}
		dec, err := c.Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(dec, src) {
			t.Fatalf("round trip mismatch for padding=%d", c.Padding())
		}
	}
}

func TestAppendEncode(t *testing.T) {
	prefix := []byte("data:")
	out := StdEncoding.AppendEncode(prefix, []byte("foobar"))
	if string(out) != "data:Zm9vYmFy" {
		t.Fatalf("got %q", out)
	}
	if string(prefix) != "data:" {
		t.Fatalf("prefix mutated: %q", prefix)
	}

	// enough capacity: no reallocation
	buf := make([]byte, 0, 16)
	out = RawURLEncoding.AppendEncode(buf, []byte{0xfb, 0xff})
	if string(out) != "-_8" {
		t.Fatalf("got %q", out)
	}
	if &out[0] != &buf[:1][0] {
		t.Fatalf("AppendEncode reallocated despite spare capacity")
	}
}
