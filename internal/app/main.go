package app

import (
	"fmt"
	"io"
	"os"
)

var (
	version   = "0.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func Main(args []string) int {
	return runMain(args, os.Stdin, os.Stdout, os.Stderr)
}

func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printHelp(stderr)
		return 2
	}

	switch args[1] {
	case "encode":
		return runEncodeCmd(args[2:], stdout, stderr)
	case "decode":
		return runDecodeCmd(args[2:], stdout, stderr)
	case "name":
		return runNameCmd(args[2:], stdout, stderr)
	case "batch":
		return runBatchCmd(args[2:], stdin, stdout, stderr)
	case "version":
		return runVersionCmd(args[2:], stdout, stderr)
	case "help", "-h", "--help":
		printHelp(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[1])
		printHelp(stderr)
		return 2
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "objname")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  objname encode [--wildcards] [--json] VALUE...")
	fmt.Fprintln(w, "  objname decode [--wildcards] [--strict] [--json] VALUE...")
	fmt.Fprintln(w, "  objname name --context camel-1 --type endpoints --id log:foo [--domain org.objname] [--pattern] [--property-wildcard]")
	fmt.Fprintln(w, "  objname batch [--input ./ids.txt] [--output ./names.jsonl] [--op encode|decode] [--wildcards] [--strict] [--watch] [--metrics-file ./objname.prom] [--tracing-endpoint http://collector:4318] [--log-level info] [--dotenv ./.env]")
	fmt.Fprintln(w, "  objname version [--long] [--json]")
}
