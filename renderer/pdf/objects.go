package pdfrenderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Ref is an indirect object number; generation is always 0.
type Ref int

func (r Ref) String() string {
	return fmt.Sprintf("%d 0 R", int(r))
}

// object writes the body between "N 0 obj\n" and "\nendobj\n".
type object interface {
	writeTo(w io.Writer) (int64, error)
}

type catalog struct {
	Pages Ref
}

func (c catalog) writeTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<< /Type /Catalog /Pages %s >>", c.Pages)
	return buf.WriteTo(w)
}

type pageTree struct {
	Kids []Ref
}

func (p pageTree) writeTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	buf.WriteString("<< /Type /Pages /Kids [")
	for i, kid := range p.Kids {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(kid.String())
	}
	fmt.Fprintf(buf, "] /Count %d >>", len(p.Kids))
	return buf.WriteTo(w)
}

// fontResource binds a resource name such as F1 to a font object.
type fontResource struct {
	Name string
	Ref  Ref
}

type page struct {
	Parent   Ref
	Width    float64
	Height   float64
	Fonts    []fontResource
	Contents Ref
}

func (p page) writeTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<< /Type /Page /Parent %s /MediaBox [0 0 %s %s] /Resources << /Font <<",
		p.Parent, formatNumber(p.Width), formatNumber(p.Height))
	for _, f := range p.Fonts {
		fmt.Fprintf(buf, " /%s %s", f.Name, f.Ref)
	}
	fmt.Fprintf(buf, " >> >> /Contents %s >>", p.Contents)
	return buf.WriteTo(w)
}

// type1Font is one of the standard 14 fonts; no widths or embedding needed.
type type1Font struct {
	BaseFont string
}

func (f type1Font) writeTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<< /Type /Font /Subtype /Type1 /BaseFont /%s >>", f.BaseFont)
	return buf.WriteTo(w)
}

// stream is an unfiltered content stream. Data is expected to end with a
// newline, so "endstream" follows it directly.
type stream struct {
	Data []byte
}

func (s stream) writeTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<< /Length %d >>\nstream\n", len(s.Data))
	buf.Write(s.Data)
	buf.WriteString("endstream")
	return buf.WriteTo(w)
}

// formatNumber prints integers without a fractional part (612, not 612.00).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
