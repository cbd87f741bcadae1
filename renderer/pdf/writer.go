package pdfrenderer

import (
	"fmt"
	"io"
)

const header = "%PDF-1.4\n"

// objectWriter emits a PDF file object by object and records byte offsets for the
// cross-reference table. Objects may be written in any order, but every
// allocated reference must be written before Close.
type objectWriter struct {
	w       *posWriter
	offsets []int64
	started bool
}

// newWriter returns an objectWriter that writes to w.
func newWriter(w io.Writer) *objectWriter {
	return &objectWriter{w: &posWriter{w: w}}
}

// Alloc reserves the next object number, starting at 1.
func (pw *objectWriter) Alloc() Ref {
	pw.offsets = append(pw.offsets, -1)
	return Ref(len(pw.offsets))
}

func (pw *objectWriter) put(ref Ref, obj object) error {
	if ref < 1 || int(ref) > len(pw.offsets) {
		return fmt.Errorf("object %d was not allocated", int(ref))
	}
	if pw.offsets[ref-1] >= 0 {
		return fmt.Errorf("object %d written twice", int(ref))
	}
	if err := pw.writeHeader(); err != nil {
		return err
	}

	pw.offsets[ref-1] = pw.w.pos
	if _, err := fmt.Fprintf(pw.w, "%d 0 obj\n", int(ref)); err != nil {
		return err
	}
	if _, err := obj.writeTo(pw.w); err != nil {
		return err
	}
	_, err := io.WriteString(pw.w, "\nendobj\n")
	return err
}

func (pw *objectWriter) writeHeader() error {
	if pw.started {
		return nil
	}
	pw.started = true
	_, err := io.WriteString(pw.w, header)
	return err
}

// Close writes the cross-reference table and trailer with root as /Root.
func (pw *objectWriter) Close(root Ref) error {
	if err := pw.writeHeader(); err != nil {
		return err
	}
	for i, off := range pw.offsets {
		if off < 0 {
			return fmt.Errorf("object %d allocated but never written", i+1)
		}
	}

	xref := pw.w.pos
	if _, err := fmt.Fprintf(pw.w, "xref\n0 %d\n0000000000 65535 f \n", len(pw.offsets)+1); err != nil {
		return err
	}
	for _, off := range pw.offsets {
		if _, err := fmt.Fprintf(pw.w, "%010d 00000 n \n", off); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(pw.w, "trailer\n<< /Size %d /Root %s >>\nstartxref\n%d\n%%%%EOF\n",
		len(pw.offsets)+1, root, xref)
	return err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
