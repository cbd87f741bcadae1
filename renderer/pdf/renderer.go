// Package pdfrenderer serializes a layout result into a minimal single-page
// PDF 1.4 file using the standard 14 fonts, without any PDF library.
package pdfrenderer

import (
	"bytes"
	"errors"
	"io"

	"github.com/ByLCY/onepage/layout"
	"github.com/ByLCY/onepage/renderer"
)

// Renderer writes the six-object document: catalog, page tree, page, the
// regular and bold Type1 fonts, and the content stream, in that order.
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a native PDF renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render returns the complete PDF bytes.
func (r *Renderer) Render(res *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo streams the PDF to w.
func (r *Renderer) RenderTo(w io.Writer, res *layout.Result) error {
	if res == nil {
		return errors.New("layout result is nil")
	}
	regular, bold := res.Fonts.Regular, res.Fonts.Bold
	if regular == "" {
		regular = "Helvetica"
	}
	if bold == "" {
		bold = "Helvetica-Bold"
	}

	pw := newWriter(w)
	catalogRef := pw.Alloc()
	pagesRef := pw.Alloc()
	pageRef := pw.Alloc()
	regularRef := pw.Alloc()
	boldRef := pw.Alloc()
	contentRef := pw.Alloc()

	objects := []struct {
		ref Ref
		obj object
	}{
		{catalogRef, catalog{Pages: pagesRef}},
		{pagesRef, pageTree{Kids: []Ref{pageRef}}},
		{pageRef, page{
			Parent: pagesRef,
			Width:  res.Width,
			Height: res.Height,
			Fonts: []fontResource{
				{Name: layout.FontRegular, Ref: regularRef},
				{Name: layout.FontBold, Ref: boldRef},
			},
			Contents: contentRef,
		}},
		{regularRef, type1Font{BaseFont: regular}},
		{boldRef, type1Font{BaseFont: bold}},
		{contentRef, stream{Data: ContentStream(res.Instructions)}},
	}
	for _, o := range objects {
		if err := pw.put(o.ref, o.obj); err != nil {
			return err
		}
	}
	return pw.Close(catalogRef)
}
