package namecodec

import (
	"fmt"
	"strings"
)

// Policy selects how Decode treats a '%' that does not start a valid escape.
type Policy int

const (
	// Lenient copies malformed escapes through as literal text.
	Lenient Policy = iota
	// Strict rejects malformed escapes with an *EscapeError.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "lenient" (or empty) and "strict".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, fmt.Errorf("invalid decode policy %q (use: lenient|strict)", s)
	}
}

// Codec bundles a wildcard mode and a decode policy so both directions of a
// round trip are made with the same settings. The zero value encodes every
// reserved character and decodes leniently.
type Codec struct {
	Policy          Policy
	IgnoreWildcards bool
}

func (c Codec) Encode(raw string) string {
	return encode(raw, c.IgnoreWildcards)
}

// Decode returns a non-nil error only under the Strict policy.
func (c Codec) Decode(encoded string) (string, error) {
	return decode(encoded, c.Policy == Strict)
}
