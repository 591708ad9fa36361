package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "wrapped dev\n" {
		t.Fatalf("version output = %q", out)
	}
}

func TestSlidesCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	out, err := execute(t, "slides", "--config", cfg)
	if err != nil {
		t.Fatalf("slides: %v", err)
	}
	if !strings.Contains(out, "34 slides") {
		t.Fatalf("slides output missing summary:\n%s", out)
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, "a.toml", "b.toml"); err == nil {
		t.Fatal("two deck arguments accepted")
	}
}
