// Package render turns letter markdown into HTML and assigns display colors
// to catalog tags.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown is configured to match what letter authors rely on: tables,
// autolinked bare URLs, strikethrough, and task lists. Raw HTML passes
// through because letter files are first-party content.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Linkify,
		extension.Strikethrough,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown converts markdown text to HTML.
func Markdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
