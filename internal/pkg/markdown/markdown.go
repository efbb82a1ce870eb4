package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// User-authored bodies are stored verbatim and encoded at render time; raw
// HTML in the source is escaped by goldmark's default unsafe=false renderer,
// so no input-side filtering is applied anywhere.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

// RenderHTML converts a markdown body to safe HTML. On a renderer failure the
// empty string is returned and the caller falls back to the raw text field.
func RenderHTML(source string) string {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return buf.String()
}
