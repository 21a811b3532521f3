package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDotenv(t *testing.T) {
	got, err := parseDotenv(strings.NewReader(`
# comment
OBJNAME_DOMAIN=acme
export OBJNAME_LOG_LEVEL="debug"
SINGLE='a b'
EMPTY=
`))
	if err != nil {
		t.Fatalf("parseDotenv: %v", err)
	}
	want := [][2]string{
		{"OBJNAME_DOMAIN", "acme"},
		{"OBJNAME_LOG_LEVEL", "debug"},
		{"SINGLE", "a b"},
		{"EMPTY", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parseDotenv mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDotenv_SetsVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OBJNAME_DOMAIN=acme\nOBJNAME_DECODE_POLICY=\"strict\"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("OBJNAME_DOMAIN", "")
	t.Setenv("OBJNAME_DECODE_POLICY", "")
	if err := loadDotenv(path); err != nil {
		t.Fatalf("loadDotenv: %v", err)
	}
	if got := os.Getenv("OBJNAME_DOMAIN"); got != "acme" {
		t.Fatalf("OBJNAME_DOMAIN=%q, want acme", got)
	}
	if got := os.Getenv("OBJNAME_DECODE_POLICY"); got != "strict" {
		t.Fatalf("OBJNAME_DECODE_POLICY=%q, want strict", got)
	}
}

func TestLoadDotenv_DoesNotOverrideNonEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OBJNAME_DOMAIN=acme\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("OBJNAME_DOMAIN", "prod")
	if err := loadDotenv(path); err != nil {
		t.Fatalf("loadDotenv: %v", err)
	}
	if got := os.Getenv("OBJNAME_DOMAIN"); got != "prod" {
		t.Fatalf("OBJNAME_DOMAIN=%q, want prod", got)
	}
}

func TestLoadDotenv_InvalidLine(t *testing.T) {
	for _, data := range []string{"NOEQUALS\n", "=value\n", "BAD=\"unterminated\\\"\n"} {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		if err := loadDotenv(path); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}
