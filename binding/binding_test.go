package binding

import (
	"encoding/json"
	"testing"
	"time"
)

func TestInterpolateDate(t *testing.T) {
	s := NewScope(time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC))
	got := s.Interpolate("Generated on ${date} (${ year })")
	want := "Generated on 2026-10-16 (2026)"
	if got != want {
		t.Fatalf("Interpolate() = %q, want %q", got, want)
	}
}

func TestInterpolateNestedData(t *testing.T) {
	var data map[string]any
	raw := `{"repo": {"name": "theatre.ai", "owners": [{"name": "ops"}, {"name": "web"}]}}`
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("解析测试数据失败: %v", err)
	}
	s := NewScope(time.Now()).Merge(data)

	tests := []struct {
		in   string
		want string
	}{
		{"${repo.name}", "theatre.ai"},
		{"owner: ${repo.owners[1].name}", "owner: web"},
		{"${repo.owners[5].name}", "${repo.owners[5].name}"},
		{"${repo.missing}", "${repo.missing}"},
		{"${repo.name.deeper}", "${repo.name.deeper}"},
		{"no placeholders", "no placeholders"},
	}
	for _, tt := range tests {
		if got := s.Interpolate(tt.in); got != tt.want {
			t.Errorf("Interpolate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMergeOverrides(t *testing.T) {
	base := NewScope(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	merged := base.Merge(map[string]any{"date": "pinned"})
	if got := merged.Interpolate("${date}"); got != "pinned" {
		t.Fatalf("外部数据应覆盖内置变量，实际 %q", got)
	}
	if got := base.Interpolate("${date}"); got != "2026-01-02" {
		t.Fatalf("Merge 不应修改原集合，实际 %q", got)
	}
}
