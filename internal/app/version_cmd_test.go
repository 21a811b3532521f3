package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCmd_Default(t *testing.T) {
	restore := setVersionMetadataForTest("v1.2.3", "abc123", "2026-02-09T12:00:00Z")
	defer restore()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	if code := runVersionCmd(nil, stdout, stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if got := strings.TrimSpace(stdout.String()); got != "v1.2.3" {
		t.Fatalf("expected version output %q, got %q", "v1.2.3", got)
	}
	if got := strings.TrimSpace(stderr.String()); got != "" {
		t.Fatalf("expected empty stderr, got %q", got)
	}
}

func TestVersionCmd_Long(t *testing.T) {
	restore := setVersionMetadataForTest("v1.2.3", "abc123", "2026-02-09T12:00:00Z")
	defer restore()

	stdout := &bytes.Buffer{}
	if code := runVersionCmd([]string{"--long"}, stdout, &bytes.Buffer{}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	got := strings.TrimSpace(stdout.String())
	if !strings.HasPrefix(got, "v1.2.3 (commit=abc123, build_date=2026-02-09T12:00:00Z, go=") {
		t.Fatalf("unexpected long output %q", got)
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	restore := setVersionMetadataForTest("v1.2.3", "abc123", "2026-02-09T12:00:00Z")
	defer restore()

	stdout := &bytes.Buffer{}
	if code := runVersionCmd([]string{"--json"}, stdout, &bytes.Buffer{}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	var got versionPayload
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if got.Version != "v1.2.3" || got.Commit != "abc123" {
		t.Fatalf("unexpected payload %#v", got)
	}
	if got.Reserved != ":=,\"\\?*" {
		t.Fatalf("unexpected reserved set %q", got.Reserved)
	}
}

func TestVersionCmd_RejectsPositionalArgs(t *testing.T) {
	stderr := &bytes.Buffer{}
	if code := runVersionCmd([]string{"extra"}, &bytes.Buffer{}, stderr); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "unexpected positional arguments") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func setVersionMetadataForTest(v, c, d string) func() {
	origVersion := version
	origCommit := commit
	origBuildDate := buildDate
	version = v
	commit = c
	buildDate = d
	return func() {
		version = origVersion
		commit = origCommit
		buildDate = origBuildDate
	}
}
