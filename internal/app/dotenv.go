package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// loadDotenv sets variables from a KEY=VALUE file. Variables that are
// already set to a non-empty value are left alone.
func loadDotenv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := parseDotenv(f)
	if err != nil {
		return err
	}
	for _, kv := range vars {
		if cur, ok := os.LookupEnv(kv[0]); ok && cur != "" {
			continue
		}
		if err := os.Setenv(kv[0], kv[1]); err != nil {
			return fmt.Errorf("set %s: %w", kv[0], err)
		}
	}
	return nil
}

func parseDotenv(r io.Reader) ([][2]string, error) {
	var out [][2]string
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf(".env line %d: missing '='", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf(".env line %d: empty key", lineNo)
		}
		val, err := unquoteDotenvValue(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf(".env line %d: %w", lineNo, err)
		}
		out = append(out, [2]string{key, val})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func unquoteDotenvValue(val string) (string, error) {
	if len(val) < 2 {
		return val, nil
	}
	switch {
	case val[0] == '"' && val[len(val)-1] == '"':
		return strconv.Unquote(val)
	case val[0] == '\'' && val[len(val)-1] == '\'':
		return val[1 : len(val)-1], nil
	}
	return val, nil
}
