// Package content bundles the default one-page summary document.
package content

import (
	_ "embed"
	"strings"

	"github.com/ByLCY/onepage/dsl"
)

// DefaultName is the name reported in parse error positions.
const DefaultName = "summary.onepage"

//go:embed summary.onepage
var summary string

// Default returns the source of the bundled summary.
func Default() string { return summary }

// ParseDefault parses the bundled summary.
func ParseDefault() (*dsl.Document, error) {
	return dsl.Parse(DefaultName, strings.NewReader(summary))
}
