package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/natefinch/atomic"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdRenderer    = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlSanitizer = bluemonday.UGCPolicy()
)

// RenderHTML converts a markdown document to sanitized HTML. Comment bodies
// are user content, so raw HTML in them never survives.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// WriteHTML renders markdown into a standalone page and replaces path atomically
func WriteHTML(path, title, markdown string) error {
	body, err := RenderHTML(markdown)
	if err != nil {
		return err
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	page.WriteString("</head>\n<body>\n")
	page.WriteString(body)
	page.WriteString("</body>\n</html>\n")

	if err := atomic.WriteFile(path, strings.NewReader(page.String())); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}
