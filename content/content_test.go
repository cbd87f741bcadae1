package content

import (
	"strings"
	"testing"
	"time"

	"github.com/ByLCY/onepage/binding"
	"github.com/ByLCY/onepage/layout"
)

func TestDefaultFitsOnePage(t *testing.T) {
	doc, err := ParseDefault()
	if err != nil {
		t.Fatalf("解析内置内容失败: %v", err)
	}
	scope := binding.NewScope(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	res, err := layout.Build(doc, scope, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("内置内容应能排入单页: %v", err)
	}
	if res.FinalY < res.Bottom {
		t.Fatalf("最终 y=%v 低于下边距 %v", res.FinalY, res.Bottom)
	}

	first := res.Instructions[0]
	if first.Text != "theatre.ai App Summary (One Page)" || first.Font != layout.FontBold || first.Y != 758 {
		t.Fatalf("首条指令不符: %+v", first)
	}
	if !strings.Contains(res.Instructions[1].Text, "2026-10-16") {
		t.Fatalf("副标题应包含生成日期: %q", res.Instructions[1].Text)
	}
	last := res.Instructions[len(res.Instructions)-1]
	if !strings.HasPrefix(last.Text, "3. Start dev server") {
		t.Fatalf("最后一条应为第 3 步: %q", last.Text)
	}
	if res.Meta.Title != "theatre.ai App Summary" {
		t.Fatalf("元信息标题不符: %q", res.Meta.Title)
	}
}
