// Command objname escapes and composes structured management object names.
//
// Raw identifiers such as endpoint URIs contain characters that carry syntax
// in names of the form domain:key=value,... ; objname encodes them so they
// can be embedded as name components, and decodes them back.
//
// Install:
//
//	go install github.com/nuetzliches/objname/cmd/objname@latest
//
// Usage:
//
//	objname encode 'log:foo'
//	objname name --context camel-1 --type endpoints --id 'log:foo'
//	objname batch --input ./ids.txt --op encode --metrics-file ./objname.prom
package main
