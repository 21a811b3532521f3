// Package objectname composes structured management names of the form
//
//	domain:key1=value1,key2=value2
//
// from raw identifier fragments. Every component is passed through namecodec
// so endpoint URIs and other free-form strings can be used as values without
// breaking the name syntax.
package objectname

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nuetzliches/objname/internal/namecodec"
)

// DefaultDomain is used by the managed-object helpers when domain is empty.
const DefaultDomain = "org.objname"

const (
	domainSeparator   = ':'
	propertySeparator = ','
	valueSeparator    = '='
	propertyWildcard  = "*"
)

// ErrNotComposed is returned by Decompose for input that was not produced by
// Name.String.
var ErrNotComposed = errors.New("not a composed object name")

type Property struct {
	Key   string
	Value string
}

// Name is an object name with raw (unencoded) components. Pattern names keep
// '*' and '?' as wildcards; Wildcard additionally appends the property-list
// wildcard so a query matches names with extra properties.
type Name struct {
	Domain     string
	Properties []Property
	Pattern    bool
	Wildcard   bool
}

func New(domain string, props ...Property) Name {
	return Name{
		Domain:     domain,
		Properties: append([]Property(nil), props...),
	}
}

// With returns a copy of n with key set to value. An existing key keeps its
// position.
func (n Name) With(key, value string) Name {
	out := n
	out.Properties = make([]Property, 0, len(n.Properties)+1)
	replaced := false
	for _, p := range n.Properties {
		if p.Key == key {
			p.Value = value
			replaced = true
		}
		out.Properties = append(out.Properties, p)
	}
	if !replaced {
		out.Properties = append(out.Properties, Property{Key: key, Value: value})
	}
	return out
}

// Get returns the raw value for key.
func (n Name) Get(key string) (string, bool) {
	for _, p := range n.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (n Name) String() string {
	var b strings.Builder
	b.WriteString(namecodec.EncodeMode(n.Domain, n.Pattern))
	b.WriteByte(domainSeparator)
	for i, p := range n.Properties {
		if i > 0 {
			b.WriteByte(propertySeparator)
		}
		b.WriteString(namecodec.EncodeMode(p.Key, n.Pattern))
		b.WriteByte(valueSeparator)
		b.WriteString(namecodec.EncodeMode(p.Value, n.Pattern))
	}
	if n.Pattern && n.Wildcard {
		if len(n.Properties) > 0 {
			b.WriteByte(propertySeparator)
		}
		b.WriteString(propertyWildcard)
	}
	return b.String()
}

// Decompose splits a name produced by Name.String back into its raw
// components. It does not accept quoted values or any other syntax String
// never emits.
func Decompose(s string, pattern bool) (Name, error) {
	domain, rest, ok := strings.Cut(s, string(domainSeparator))
	if !ok {
		return Name{}, fmt.Errorf("%w: missing domain separator in %q", ErrNotComposed, s)
	}
	n := Name{
		Domain:  namecodec.DecodeMode(domain, pattern),
		Pattern: pattern,
	}
	if rest == "" {
		return n, nil
	}

	parts := strings.Split(rest, string(propertySeparator))
	for i, part := range parts {
		if pattern && part == propertyWildcard {
			if i != len(parts)-1 {
				return Name{}, fmt.Errorf("%w: property wildcard must be last in %q", ErrNotComposed, s)
			}
			n.Wildcard = true
			continue
		}
		key, value, ok := strings.Cut(part, string(valueSeparator))
		if !ok || key == "" {
			return Name{}, fmt.Errorf("%w: malformed property %q", ErrNotComposed, part)
		}
		n.Properties = append(n.Properties, Property{
			Key:   namecodec.DecodeMode(key, pattern),
			Value: namecodec.DecodeMode(value, pattern),
		})
	}
	return n, nil
}
