package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/nuetzliches/objname/internal/namecodec"
	"github.com/nuetzliches/objname/internal/objectname"
)

type codecResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runEncodeCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	wildcards := fs.Bool("wildcards", false, "")
	jsonOutput := fs.Bool("json", false, "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "encode: missing value")
		return 2
	}

	c := namecodec.Codec{IgnoreWildcards: *wildcards}
	enc := json.NewEncoder(stdout)
	for _, raw := range fs.Args() {
		out := c.Encode(raw)
		if !*jsonOutput {
			fmt.Fprintln(stdout, out)
			continue
		}
		if err := enc.Encode(codecResult{Input: raw, Output: out}); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
	}
	return 0
}

func runDecodeCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	wildcards := fs.Bool("wildcards", false, "")
	strict := fs.Bool("strict", false, "")
	jsonOutput := fs.Bool("json", false, "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "decode: missing value")
		return 2
	}
	cfg, err := resolveSettings("", "", "", "", *strict)
	if err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 2
	}

	c := namecodec.Codec{Policy: cfg.Policy, IgnoreWildcards: *wildcards}
	enc := json.NewEncoder(stdout)
	code := 0
	for _, encoded := range fs.Args() {
		out, err := c.Decode(encoded)
		if err != nil {
			code = 1
			if !*jsonOutput {
				fmt.Fprintf(stderr, "decode: %v\n", err)
				continue
			}
		}
		if !*jsonOutput {
			fmt.Fprintln(stdout, out)
			continue
		}
		res := codecResult{Input: encoded, Output: out}
		if err != nil {
			res.Error = err.Error()
		}
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stderr, "decode: %v\n", err)
			return 1
		}
	}
	return code
}

type decomposedName struct {
	Domain     string            `json:"domain"`
	Properties []namePropertyOut `json:"properties"`
	Wildcard   bool              `json:"wildcard,omitempty"`
}

type namePropertyOut struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func runNameCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("name", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	domain := fs.String("domain", "", "")
	contextName := fs.String("context", "", "")
	kindName := fs.String("type", "", "")
	id := fs.String("id", "", "")
	pattern := fs.Bool("pattern", false, "")
	propertyWildcard := fs.Bool("property-wildcard", false, "")
	decompose := fs.String("decompose", "", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "name: %v\n", err)
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "name: unexpected positional arguments")
		return 2
	}

	if strings.TrimSpace(*decompose) != "" {
		return printDecomposedName(*decompose, *pattern, stdout, stderr)
	}

	if strings.TrimSpace(*contextName) == "" || strings.TrimSpace(*kindName) == "" {
		fmt.Fprintln(stderr, "name: --context and --type are required")
		return 2
	}
	kind, err := objectname.ParseKind(*kindName)
	if err != nil {
		fmt.Fprintf(stderr, "name: %v\n", err)
		return 2
	}
	cfg, err := resolveSettings("", "", *domain, "", false)
	if err != nil {
		fmt.Fprintf(stderr, "name: %v\n", err)
		return 2
	}

	var n objectname.Name
	if *pattern {
		idPattern := *id
		if idPattern == "" {
			idPattern = "*"
		}
		n = objectname.Query(cfg.Domain, *contextName, kind, idPattern)
		n.Wildcard = *propertyWildcard
	} else {
		if *id == "" {
			fmt.Fprintln(stderr, "name: --id is required unless --pattern is set")
			return 2
		}
		n = objectname.For(cfg.Domain, *contextName, kind, *id)
	}
	fmt.Fprintln(stdout, n.String())
	return 0
}

func printDecomposedName(s string, pattern bool, stdout, stderr io.Writer) int {
	n, err := objectname.Decompose(s, pattern)
	if err != nil {
		fmt.Fprintf(stderr, "name: %v\n", err)
		return 1
	}
	out := decomposedName{
		Domain:     n.Domain,
		Properties: make([]namePropertyOut, 0, len(n.Properties)),
		Wildcard:   n.Wildcard,
	}
	for _, p := range n.Properties {
		out.Properties = append(out.Properties, namePropertyOut{Key: p.Key, Value: p.Value})
	}
	if err := json.NewEncoder(stdout).Encode(out); err != nil {
		fmt.Fprintf(stderr, "name: %v\n", err)
		return 1
	}
	return 0
}
