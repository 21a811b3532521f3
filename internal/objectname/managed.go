package objectname

import (
	"fmt"
	"strings"
)

// Kind is the value of the "type" property of a managed object name.
type Kind string

const (
	KindContext       Kind = "context"
	KindRoute         Kind = "routes"
	KindEndpoint      Kind = "endpoints"
	KindProcessor     Kind = "processors"
	KindComponent     Kind = "components"
	KindConsumer      Kind = "consumers"
	KindProducer      Kind = "producers"
	KindService       Kind = "services"
	KindThreadPool    Kind = "threadpools"
	KindTracer        Kind = "tracer"
	KindEventNotifier Kind = "eventnotifiers"
	KindErrorHandler  Kind = "errorhandlers"
)

const (
	KeyContext = "context"
	KeyType    = "type"
	KeyName    = "name"
)

var knownKinds = []Kind{
	KindContext,
	KindRoute,
	KindEndpoint,
	KindProcessor,
	KindComponent,
	KindConsumer,
	KindProducer,
	KindService,
	KindThreadPool,
	KindTracer,
	KindEventNotifier,
	KindErrorHandler,
}

// Kinds returns all known kinds.
func Kinds() []Kind {
	return append([]Kind(nil), knownKinds...)
}

// ParseKind accepts a kind value, case-insensitively. The singular forms
// "route", "endpoint" and so on are accepted as well.
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, k := range knownKinds {
		if v == string(k) || v+"s" == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown object kind %q", s)
}

// For names the managed object id of the given kind within context.
func For(domain, context string, kind Kind, id string) Name {
	if domain == "" {
		domain = DefaultDomain
	}
	return New(domain,
		Property{Key: KeyContext, Value: context},
		Property{Key: KeyType, Value: string(kind)},
		Property{Key: KeyName, Value: id},
	)
}

// Query is For with '*' and '?' in context and idPattern kept as wildcards.
func Query(domain, context string, kind Kind, idPattern string) Name {
	n := For(domain, context, kind, idPattern)
	n.Pattern = true
	return n
}
