package cmd

import (
	"strings"
	"testing"
)

func TestReadSourceFallsBackToEmbeddedExample(t *testing.T) {
	src, filename, err := readSource(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "<built-in example>" {
		t.Fatalf("want built-in example filename, got %q", filename)
	}
	if !strings.Contains(src, "VAR_GLOBAL") {
		t.Fatalf("want embedded example to contain a VAR_GLOBAL block, got %q", src)
	}
}

func TestReadSourceReadsNamedFile(t *testing.T) {
	path := writeTempSource(t, `INSTRUCTION { }`)
	src, filename, err := readSource([]string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != path {
		t.Fatalf("want filename %q, got %q", path, filename)
	}
	if src != `INSTRUCTION { }` {
		t.Fatalf("want file contents echoed back, got %q", src)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, _, err := readSource([]string{"/no/such/file.ming"})
	if err == nil {
		t.Fatalf("want an error for a missing file, got nil")
	}
}

func TestColorEnabledReflectsFlag(t *testing.T) {
	old := useColor
	defer func() { useColor = old }()

	useColor = false
	if ColorEnabled() {
		t.Fatalf("want ColorEnabled false")
	}
	useColor = true
	if !ColorEnabled() {
		t.Fatalf("want ColorEnabled true")
	}
}
