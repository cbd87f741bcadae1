package pdfrenderer

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// EncodeLatin1 encodes s as ISO-8859-1 for the standard 14 fonts. Runes
// outside Latin-1 and invalid UTF-8 become '?', one byte per rune.
func EncodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok || r == utf8.RuneError {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
