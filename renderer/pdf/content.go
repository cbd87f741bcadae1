package pdfrenderer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/onepage/layout"
)

// showText formats one positioned text run as a self-contained BT/ET block.
func showText(in layout.Instruction) string {
	return fmt.Sprintf("BT /%s %.2f Tf 1 0 0 1 %.2f %.2f Tm (%s) Tj ET",
		in.Font, in.Size, in.X, in.Y, Escape(in.Text))
}

// ContentStream returns the page content: one operator line per instruction,
// newline-terminated and Latin-1 encoded.
func ContentStream(instructions []layout.Instruction) []byte {
	lines := make([]string, len(instructions))
	for i, in := range instructions {
		lines[i] = showText(in)
	}
	return EncodeLatin1(strings.Join(lines, "\n") + "\n")
}
