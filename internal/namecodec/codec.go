// Package namecodec escapes the characters that carry syntax in structured
// object names (domain:key=value,...) so raw fragments such as endpoint URIs
// can be embedded as name components and recovered later.
//
// Each reserved character is replaced by '%' followed by two lowercase hex
// digits. In wildcard mode '*' and '?' are left alone so the result can be
// used as a query pattern.
package namecodec

import (
	"errors"
	"strconv"
	"strings"
)

const (
	flagReserved uint8 = 1 << iota
	flagWildcard
)

const lowerhex = "0123456789abcdef"

// reservedChars lists the reserved set in table order.
const reservedChars = ":=,\"\\?*"

var table = [256]uint8{
	':':  flagReserved,
	'=':  flagReserved,
	',':  flagReserved,
	'"':  flagReserved,
	'\\': flagReserved,
	'?':  flagReserved | flagWildcard,
	'*':  flagReserved | flagWildcard,
}

// ErrMalformedEscape is the sentinel wrapped by *EscapeError.
var ErrMalformedEscape = errors.New("malformed escape sequence")

// EscapeError reports a '%' that is not followed by two hex digits.
type EscapeError struct {
	Input  string
	Offset int
}

func (e *EscapeError) Error() string {
	if e == nil {
		return ""
	}
	end := e.Offset + 3
	if end > len(e.Input) {
		end = len(e.Input)
	}
	return "invalid name escape " + strconv.Quote(e.Input[e.Offset:end]) + " at offset " + strconv.Itoa(e.Offset)
}

func (e *EscapeError) Unwrap() error {
	return ErrMalformedEscape
}

// IsReserved reports whether c has syntactic meaning in an object name.
func IsReserved(c byte) bool {
	return table[c]&flagReserved != 0
}

// IsWildcard reports whether c is a query wildcard ('*' or '?').
func IsWildcard(c byte) bool {
	return table[c]&flagWildcard != 0
}

// Reserved returns the reserved characters.
func Reserved() string {
	return reservedChars
}

// Encode escapes every reserved character in raw, wildcards included.
func Encode(raw string) string {
	return encode(raw, false)
}

// EncodeMode escapes the reserved characters in raw. When ignoreWildcards is
// true, '*' and '?' are copied through so the result stays usable as a query
// pattern.
func EncodeMode(raw string, ignoreWildcards bool) string {
	return encode(raw, ignoreWildcards)
}

// Decode reverses Encode. Malformed escapes are copied through literally.
func Decode(encoded string) string {
	s, _ := decode(encoded, false)
	return s
}

// DecodeMode reverses EncodeMode. The flag does not change how the input is
// scanned; it is accepted so callers can pass the mode they encoded with.
func DecodeMode(encoded string, ignoreWildcards bool) string {
	s, _ := decode(encoded, false)
	return s
}

// DecodeStrict is Decode with the Strict policy.
func DecodeStrict(encoded string) (string, error) {
	return decode(encoded, true)
}

func shouldEscape(c byte, ignoreWildcards bool) bool {
	f := table[c]
	if f&flagReserved == 0 {
		return false
	}
	return !ignoreWildcards || f&flagWildcard == 0
}

func encode(s string, ignoreWildcards bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], ignoreWildcards) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c, ignoreWildcards) {
			b.WriteByte('%')
			b.WriteByte(lowerhex[c>>4])
			b.WriteByte(lowerhex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unhex returns the value of the hex digit c, or -1.
func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return -1
}

func decode(s string, strict bool) (string, error) {
	first := strings.IndexByte(s, '%')
	if first < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for i := first; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 < len(s) {
			hi, lo := unhex(s[i+1]), unhex(s[i+2])
			if hi >= 0 && lo >= 0 {
				b.WriteByte(byte(hi<<4 | lo))
				i += 2
				continue
			}
		}
		if strict {
			return "", &EscapeError{Input: s, Offset: i}
		}
		b.WriteByte('%')
	}
	return b.String(), nil
}
