package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:;]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a one-page summary file:
//
//	doc Summary v1 {
//	  meta { title: "..." }
//	  page {
//	    title "..."
//	    bullet "..."
//	  }
//	}
type Document struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"Newline* 'doc' @Ident"`
	Version string         `parser:"@Ident '{' Newline*"`
	Meta    *Meta          `parser:"( @@ Newline* )?"`
	Page    *Page          `parser:"@@ Newline* '}' Newline*"`
}

// Meta holds document information entries (title, author, subject, creator).
type Meta struct {
	Entries []*Entry `parser:"'meta' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry is a `key: "value"` pair inside meta.
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value StringLiteral  `parser:"@String"`
}

// Page lists the content statements in document order.
type Page struct {
	Statements []*Statement `parser:"'page' '{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement is a single content call such as `bullet "text"` or `number 2 "text"`.
// Argument arity is checked by the layout builder, not the grammar.
type Statement struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Kind string         `parser:"@Ident"`
	Args []*Arg         `parser:"@@*"`
}

// Arg is either a number or a string literal.
type Arg struct {
	Number *float64       `parser:"  @Number"`
	Text   *StringLiteral `parser:"| @String"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content; name is used in error positions.
func Parse(name string, r io.Reader) (*Document, error) {
	return documentParser.Parse(name, r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// MetaValue returns the meta entry for key (case-insensitive), or "".
func (d *Document) MetaValue(key string) string {
	if d == nil || d.Meta == nil {
		return ""
	}
	for _, e := range d.Meta.Entries {
		if strings.EqualFold(e.Key, key) {
			return string(e.Value)
		}
	}
	return ""
}

// Statements returns the page statements, tolerating a nil page.
func (d *Document) Statements() []*Statement {
	if d == nil || d.Page == nil {
		return nil
	}
	return d.Page.Statements
}

// Strings returns the string arguments in order.
func (s *Statement) Strings() []string {
	var out []string
	for _, a := range s.Args {
		if a.Text != nil {
			out = append(out, string(*a.Text))
		}
	}
	return out
}

// Numbers returns the numeric arguments in order.
func (s *Statement) Numbers() []float64 {
	var out []float64
	for _, a := range s.Args {
		if a.Number != nil {
			out = append(out, *a.Number)
		}
	}
	return out
}
