// Package render converts article markdown into sanitized HTML and plain
// text previews for listing payloads.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// PreviewLength is the maximum rune count of a listing preview.
const PreviewLength = 400

var (
	markdown  goldmark.Markdown
	ugcPolicy *bluemonday.Policy
	stripAll  *bluemonday.Policy
)

func init() {
	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			// Raw HTML in bodies passes through here and is cleaned by
			// bluemonday afterwards.
			html.WithUnsafe(),
		),
	)

	ugcPolicy = bluemonday.UGCPolicy()
	stripAll = bluemonday.StripTagsPolicy()
}

// HTML converts a markdown body into sanitized HTML.
func HTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return ugcPolicy.Sanitize(buf.String()), nil
}

// Preview reduces a markdown body to a tag-free, whitespace-collapsed
// excerpt of at most PreviewLength runes. A truncated excerpt ends with an
// ellipsis.
func Preview(body string) string {
	var buf bytes.Buffer
	text := body
	if err := markdown.Convert([]byte(body), &buf); err == nil {
		text = buf.String()
	}
	plain := strings.Join(strings.Fields(stripAll.Sanitize(text)), " ")
	return truncate(plain, PreviewLength)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
