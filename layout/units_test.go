package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 9.6, 11.5, 16, 54, 612, 792}
	for _, pt := range samples {
		back := ToPT(ToMM(pt))
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

// TestLetterPageInMM 校验默认 Letter 页面换算为毫米后的尺寸。
func TestLetterPageInMM(t *testing.T) {
	if got := ToMM(612); math.Abs(got-215.9) > 0.01 {
		t.Fatalf("612pt 转 mm 期望约 215.9，实际 %g", got)
	}
	if got := ToMM(792); math.Abs(got-279.4) > 0.01 {
		t.Fatalf("792pt 转 mm 期望约 279.4，实际 %g", got)
	}
}
