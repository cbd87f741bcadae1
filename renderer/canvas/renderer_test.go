package canvasrenderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByLCY/onepage/layout"
)

func sampleResult() *layout.Result {
	return &layout.Result{
		Width:  612,
		Height: 792,
		Instructions: []layout.Instruction{
			{Font: layout.FontBold, Size: 16, X: 54, Y: 758, Text: "Summary"},
			{Font: layout.FontRegular, Size: 9.6, X: 62, Y: 738, Text: "- café (preview)"},
			{Font: layout.FontRegular, Size: 9.6, X: 62, Y: 726, Text: ""},
		},
		Meta: layout.DocumentMeta{Title: "Summary", Creator: "onepage"},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := NewRenderer().Render(sampleResult())
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestRenderRejectsInvalidInput(t *testing.T) {
	if _, err := NewRenderer().Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
	if _, err := NewRenderer().Render(&layout.Result{}); err == nil {
		t.Fatalf("expected error for zero page size")
	}
}

func TestTextWidthScalesWithSize(t *testing.T) {
	r := NewRenderer()
	small, err := r.TextWidth(layout.Instruction{Font: layout.FontRegular, Size: 10, Text: "hello world"})
	if err != nil {
		t.Fatalf("TextWidth error: %v", err)
	}
	large, err := r.TextWidth(layout.Instruction{Font: layout.FontRegular, Size: 20, Text: "hello world"})
	if err != nil {
		t.Fatalf("TextWidth error: %v", err)
	}
	if small <= 0 || large <= small*1.5 {
		t.Fatalf("expected width to grow with size: small=%g large=%g", small, large)
	}
}

func TestOverrunsFlagsLongLines(t *testing.T) {
	res := sampleResult()
	long := strings.Repeat("W", 150)
	res.Instructions = append(res.Instructions, layout.Instruction{
		Font: layout.FontRegular, Size: 9.6, X: 62, Y: 714, Text: long,
	})

	overruns, err := NewRenderer().Overruns(res)
	if err != nil {
		t.Fatalf("Overruns error: %v", err)
	}
	if len(overruns) != 1 {
		t.Fatalf("expected exactly one overrun, got %+v", overruns)
	}
	if overruns[0].Index != 3 || overruns[0].Width <= overruns[0].Limit {
		t.Fatalf("unexpected overrun: %+v", overruns[0])
	}
	// 右边界与最小左边距对称：612 - 54 - 62
	if overruns[0].Limit != 612-54-62 {
		t.Fatalf("unexpected limit %g", overruns[0].Limit)
	}
}

func TestOptionsRejectUnknownFont(t *testing.T) {
	if _, err := NewRendererWithOptions(Options{Fonts: map[string]Resource{"F3": {Bytes: []byte{1}}}}); err == nil {
		t.Fatalf("expected error for unknown logical font")
	}
	if _, err := NewRendererWithOptions(Options{Fonts: map[string]Resource{"F1": {Path: "does/not/exist.ttf"}}}); err == nil {
		t.Fatalf("expected error for missing font file")
	}
}
