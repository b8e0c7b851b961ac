package render

import (
	"strings"
	"testing"
)

func TestMarkdownBasics(t *testing.T) {
	html, err := Markdown("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(html, "<h1") {
		t.Errorf("expected heading in output: %s", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold in output: %s", html)
	}
}

func TestMarkdownTable(t *testing.T) {
	html, err := Markdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected table in output: %s", html)
	}
}

func TestMarkdownAutolink(t *testing.T) {
	html, err := Markdown("See https://example.com/page for details.")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(html, `<a href="https://example.com/page"`) {
		t.Errorf("expected bare URL to autolink: %s", html)
	}
}

func TestMarkdownStrikethrough(t *testing.T) {
	html, err := Markdown("~~gone~~")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(html, "<del>gone</del>") {
		t.Errorf("expected strikethrough in output: %s", html)
	}
}

func TestMarkdownTaskList(t *testing.T) {
	html, err := Markdown("- [x] done\n- [ ] todo")
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(html, `type="checkbox"`) {
		t.Errorf("expected task list checkboxes in output: %s", html)
	}
}

func TestTagColorKnownTags(t *testing.T) {
	tests := map[string]string{
		"urgent":        "bg-red-100 text-red-800",
		"safety":        "bg-blue-100 text-blue-800",
		"public-health": "bg-green-100 text-green-800",
	}
	for tag, want := range tests {
		if got := TagColor(tag); got != want {
			t.Errorf("TagColor(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestTagColorDeterministicForUnknownTags(t *testing.T) {
	first := TagColor("zoning")
	second := TagColor("zoning")
	if first != second {
		t.Errorf("TagColor not deterministic: %q then %q", first, second)
	}

	found := false
	for _, color := range palette {
		if color == first {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("TagColor(%q) = %q not drawn from the palette", "zoning", first)
	}
}
