package pdfrenderer

import "strings"

var literalEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// Escape prepares text for a PDF literal string (§7.3.4.2). The backslash is
// escaped first so the escapes added for parentheses stay intact.
func Escape(text string) string {
	return literalEscaper.Replace(text)
}
