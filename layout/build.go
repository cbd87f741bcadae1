package layout

import (
	"math"

	"github.com/ByLCY/onepage/binding"
	"github.com/ByLCY/onepage/dsl"
	apperrors "github.com/ByLCY/onepage/errors"
)

// Build 按文档顺序把 DSL 语句交给 Engine，并完成溢出检查。
// 字符串参数在排版前先经过 scope 的 ${...} 插值。
func Build(doc *dsl.Document, scope binding.Scope, cfg Config) (*Result, error) {
	if doc == nil || doc.Page == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidContent, "文档缺少 page 段落")
	}
	eng, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	b := &builder{eng: eng, scope: scope}
	for _, st := range doc.Statements() {
		if err := b.apply(st); err != nil {
			return nil, err
		}
	}

	eng.SetMeta(DocumentMeta{
		Title:   scope.Interpolate(doc.MetaValue("title")),
		Author:  scope.Interpolate(doc.MetaValue("author")),
		Subject: scope.Interpolate(doc.MetaValue("subject")),
		Creator: creatorOrDefault(scope.Interpolate(doc.MetaValue("creator"))),
	})
	return eng.Finish()
}

type builder struct {
	eng   *Engine
	scope binding.Scope
	// lastNumber 记录上一条编号，省略序号的 number 语句在此基础上递增；section 会将其清零。
	lastNumber int
}

func (b *builder) apply(st *dsl.Statement) error {
	switch st.Kind {
	case "title":
		return b.text(st, b.eng.Title)
	case "subtitle":
		return b.text(st, b.eng.Subtitle)
	case "section":
		b.lastNumber = 0
		return b.text(st, b.eng.Section)
	case "body":
		return b.text(st, b.eng.Body)
	case "bullet":
		return b.text(st, b.eng.Bullet)
	case "number":
		return b.number(st)
	case "gap":
		return b.gap(st)
	default:
		return apperrors.New(apperrors.ErrCodeInvalidContent, "%s: 未知语句 %q", st.Pos, st.Kind)
	}
}

func (b *builder) text(st *dsl.Statement, fn func(string)) error {
	texts := st.Strings()
	if len(texts) != 1 || len(st.Args) != 1 {
		return apperrors.New(apperrors.ErrCodeInvalidContent, "%s: %s 需要且仅需要一个字符串参数", st.Pos, st.Kind)
	}
	fn(b.scope.Interpolate(texts[0]))
	return nil
}

func (b *builder) number(st *dsl.Statement) error {
	texts, nums := st.Strings(), st.Numbers()
	if len(texts) != 1 || len(nums) > 1 || len(st.Args) != len(texts)+len(nums) {
		return apperrors.New(apperrors.ErrCodeInvalidContent, "%s: number 的用法为 number [序号] \"文本\"", st.Pos)
	}
	n := b.lastNumber + 1
	if len(nums) == 1 {
		if nums[0] < 0 || nums[0] > math.MaxInt32 || nums[0] != math.Trunc(nums[0]) {
			return apperrors.New(apperrors.ErrCodeInvalidContent, "%s: 序号必须为不超过 %d 的非负整数，实际 %g", st.Pos, math.MaxInt32, nums[0])
		}
		n = int(nums[0])
	}
	b.lastNumber = n
	b.eng.Number(n, b.scope.Interpolate(texts[0]))
	return nil
}

func (b *builder) gap(st *dsl.Statement) error {
	nums := st.Numbers()
	if len(nums) != 1 || len(st.Args) != 1 || nums[0] < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidContent, "%s: gap 需要一个非负数值（pt）", st.Pos)
	}
	b.eng.Gap(nums[0])
	return nil
}

func creatorOrDefault(v string) string {
	if v == "" {
		return "onepage"
	}
	return v
}
