package internal

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ahtheerr/mbego/internal/warn"
)

// Encoding names recognised by the parse-time configuration (§6.3).
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Decoder resolves a configured encoding name to a golang.org/x/text
// decoder. The UTF-8 decoder rejects invalid input instead of
// substituting U+FFFD, so DecodeString's latin1 fallback applies.
func Decoder(name string) *encoding.Decoder {
	switch name {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder()
	default:
		return &encoding.Decoder{Transformer: transform.Chain(encoding.UTF8Validator, unicode.UTF8.NewDecoder())}
	}
}

// DecodeString implements §4.1's decode_string: read up to
// declaredLength bytes at offset, truncate at the first NUL, and
// decode the remainder with dec. On decoder failure it falls back to
// latin1, then to the empty string. Out-of-range reads are tolerated
// (§7 TruncatedBuffer): the read is clamped to the available bytes.
func DecodeString(buf []byte, offset int64, declaredLength int, dec *encoding.Decoder) string {
	if offset < 0 || offset >= int64(len(buf)) {
		warn.Warnf("decode string at %d: out of range (buffer size %d)", offset, len(buf))
		return ""
	}
	end := offset + int64(declaredLength)
	if end > int64(len(buf)) {
		warn.Warnf("decode string at %d: declared length %d exceeds buffer, clamping", offset, declaredLength)
		end = int64(len(buf))
	}
	raw := buf[offset:end]
	if nul := bytes.IndexByte(raw, 0); nul >= 0 {
		raw = raw[:nul]
	}
	if len(raw) == 0 {
		return ""
	}

	out, _, err := transform.Bytes(dec, raw)
	if err == nil {
		return string(out)
	}

	warn.Warnf("decode string at %d: primary decoder failed (%v), falling back to latin1", offset, err)
	out, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		warn.Warnf("decode string at %d: latin1 fallback also failed (%v), using empty string", offset, err)
		return ""
	}
	return string(out)
}

// EncodeString implements the generator's §4.4 write side: the
// generator always encodes UTF-8 regardless of the parse-time
// option, per §6.3.
func EncodeString(s string) []byte {
	return []byte(s)
}
