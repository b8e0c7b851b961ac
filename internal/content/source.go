// Package content fetches letter body documents, one markdown file per
// letter id.
package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound signals that no body document exists for the letter id.
var ErrNotFound = errors.New("letter content not found")

// Source fetches the body text for a letter id.
type Source interface {
	Fetch(ctx context.Context, letterID string) (string, error)
}

// DirSource reads letter bodies from a local directory as {id}.md files.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Fetch(ctx context.Context, letterID string) (string, error) {
	// Letter ids come from the catalog, but refuse path traversal anyway.
	if letterID != filepath.Base(letterID) {
		return "", ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, letterID+".md"))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read letter %s: %w", letterID, err)
	}
	return Dedent(string(data)), nil
}

// Dedent strips a leading newline and the common leading indentation from
// every line, then trims the result. Letter templates are often authored
// indented inside larger documents.
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	lines := strings.Split(text, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.TrimSpace(text)
	}

	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
