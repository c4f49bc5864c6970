package aclstore

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Encode escapes a subject or key string so it is safe to use as a
// record field name or filter value. The field-path separator, the
// query-operator prefix, the escape character itself, and non-graphic
// bytes are percent-encoded; everything else passes through untouched.
// Decode inverts Encode exactly.
func Encode(text string) string {
	i := 0
	for i < len(text) && !shouldEscape(text[i]) {
		i++
	}
	if i == len(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteString(text[:i])
	for ; i < len(text); i++ {
		c := text[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Decode reverses Encode. Percent sequences that do not form a valid
// escape are passed through literally, so decoding text that was never
// encoded is safe.
func Decode(text string) string {
	if !strings.ContainsRune(text, '%') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '%' && i+2 < len(text) && isHex(text[i+1]) && isHex(text[i+2]) {
			b.WriteByte(unhex(text[i+1])<<4 | unhex(text[i+2]))
			i += 2
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// EncodeAll encodes each element of a key or subject list.
func EncodeAll(texts []string) []string {
	encoded := make([]string, len(texts))
	for i, text := range texts {
		encoded[i] = Encode(text)
	}
	return encoded
}

// DecodeAll decodes each element of a stored field-name list.
func DecodeAll(texts []string) []string {
	decoded := make([]string, len(texts))
	for i, text := range texts {
		decoded[i] = Decode(text)
	}
	return decoded
}

func shouldEscape(c byte) bool {
	switch c {
	case '%', '.', '$':
		return true
	}
	return c < 0x20 || c == 0x7f
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'A' <= c && c <= 'F':
		return true
	case 'a' <= c && c <= 'f':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return c - 'a' + 10
}
