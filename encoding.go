package id3

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding enumerant carried in the first byte of
// most frame bodies.
type Encoding byte

const (
	EncodingLatin1  Encoding = 0 // ISO-8859-1
	EncodingUTF16   Encoding = 1 // UTF-16 with BOM
	EncodingUTF16BE Encoding = 2 // UTF-16 big-endian, no BOM (v2.4)
	EncodingUTF8    Encoding = 3 // UTF-8 (v2.4)
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	}
	return "unknown"
}

// wide reports whether the encoding uses 16-bit code units, and
// therefore a two-byte NUL terminator.
func (e Encoding) wide() bool {
	return e == EncodingUTF16 || e == EncodingUTF16BE
}

// decodeText converts b from the given on-disk encoding to UTF-8. An
// unknown encoding byte is read as Latin-1. UTF-16 input is checked
// for a BOM, which selects the byte order and is stripped from the
// result; without one the text is taken to be big-endian. Decoding is
// best effort and never fails; malformed sequences come back as
// replacement characters.
func decodeText(enc Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		endianness := unicode.BigEndian
		if len(b) >= 2 {
			switch {
			case b[0] == 0xFF && b[1] == 0xFE:
				endianness = unicode.LittleEndian
				b = b[2:]
			case b[0] == 0xFE && b[1] == 0xFF:
				b = b[2:]
			}
		}
		out, err := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return ""
		}
		return trimNul(string(out))
	case EncodingUTF8:
		return trimNul(string(b))
	default:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return ""
		}
		return trimNul(string(out))
	}
}

func trimNul(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s[:len(s)-1]
	}
	return s
}

// encodeLatin1 converts UTF-8 text to ISO-8859-1 bytes, replacing
// unrepresentable runes.
func encodeLatin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// ascii reports whether s contains only 7-bit characters and can be
// written as Latin-1 without loss.
func ascii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// splitTerminated splits b at the first NUL terminator of the given
// encoding. For wide encodings the terminator is a 16-bit-aligned
// 0x0000 pair; a lone 0x00 inside a code unit is not a terminator.
func splitTerminated(enc Encoding, b []byte) (head, rest []byte, found bool) {
	if !enc.wide() {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			return b, nil, false
		}
		return b[:i], b[i+1:], true
	}

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], b[i+2:], true
		}
	}
	return b, nil, false
}
