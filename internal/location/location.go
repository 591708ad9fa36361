// Package location mirrors the current slide into a fragment ("#3") and
// keeps the last written fragment for a deck on disk.
//
// The fragment is written with replace semantics: each write overwrites the
// previous one, so navigating never accumulates history.
package location

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Format renders a slide index as a fragment.
func Format(index int) string {
	return "#" + strconv.Itoa(index)
}

// Parse decodes a fragment into a slide index. It accepts an optional
// leading '#', and reports false for anything that is not a decimal integer
// within [0, count).
func Parse(fragment string, count int) (int, bool) {
	raw := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if raw == "" {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}

// Split separates "deck.toml#4" into its path and fragment parts. The
// fragment keeps its leading '#'.
func Split(ref string) (path, fragment string) {
	i := strings.LastIndex(ref, "#")
	if i < 0 {
		return ref, ""
	}
	return ref[:i], ref[i:]
}

// Store persists the fragment of one deck.
type Store struct {
	path string
}

// NewStore returns a store keeping the fragment for deckRef under stateDir.
// An empty deckRef names the built-in deck.
func NewStore(stateDir, deckRef string) *Store {
	return &Store{path: filepath.Join(stateDir, "positions", storeName(deckRef))}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Read returns the stored fragment, or "" when nothing has been written yet
// or the file cannot be read.
func (s *Store) Read() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Replace overwrites the stored fragment. The new value is written to a
// temporary file in the same directory and renamed over the old one.
func (s *Store) Replace(fragment string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp fragment: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(fragment + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write fragment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write fragment: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write fragment: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace fragment: %w", err)
	}
	return nil
}

func storeName(deckRef string) string {
	if strings.TrimSpace(deckRef) == "" {
		return "builtin.pos"
	}
	abs, err := filepath.Abs(deckRef)
	if err != nil {
		abs = deckRef
	}
	sum := sha1.Sum([]byte(abs))
	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	return base + "-" + hex.EncodeToString(sum[:4]) + ".pos"
}
