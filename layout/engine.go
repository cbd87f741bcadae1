package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// OverflowError 表示内容越过了页面下边距。单页设计不分页，因此这是致命错误。
type OverflowError struct {
	FinalY float64
	Bottom float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("内容超出页面: 最终 y=%.2f 低于下边距 %.2f", e.FinalY, e.Bottom)
}

// Engine 将语义化的内容调用转换为已定位的绘制指令，并维护自上而下移动的游标。
// Engine 不是并发安全的，只应由单个调用方按文档顺序使用。
type Engine struct {
	cfg          Config
	y            float64
	instructions []Instruction
	meta         DocumentMeta
}

// NewEngine 使用给定配置创建排版引擎，游标位于 cfg.Page.Top。
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, y: cfg.Page.Top}, nil
}

// Cursor 返回当前游标位置（pt）。
func (e *Engine) Cursor() float64 { return e.y }

// Instructions 返回已生成指令的副本。
func (e *Engine) Instructions() []Instruction {
	out := make([]Instruction, len(e.instructions))
	copy(out, e.instructions)
	return out
}

// SetMeta 设置文档元信息；Title 为空时沿用第一条 Title 调用的文本。
func (e *Engine) SetMeta(meta DocumentMeta) {
	if meta.Title == "" {
		meta.Title = e.meta.Title
	}
	e.meta = meta
}

// Title 输出一行标题，不折行（调用方保证其宽度合适）。
func (e *Engine) Title(text string) {
	if e.meta.Title == "" {
		e.meta.Title = text
	}
	e.emit(e.cfg.Styles.Title, text, "")
}

// Subtitle 输出折行段落，并在其后追加固定间距。
func (e *Engine) Subtitle(text string) {
	e.emit(e.cfg.Styles.Subtitle, text, "")
}

// Section 输出一行小节标题。
func (e *Engine) Section(text string) {
	e.emit(e.cfg.Styles.Section, text, "")
}

// Body 输出正文段落。
func (e *Engine) Body(text string) {
	e.emit(e.cfg.Styles.Body, text, "")
}

// Bullet 输出列表项：首行带项目符号，续行与符号后的文本对齐。
func (e *Engine) Bullet(text string) {
	st := e.cfg.Styles.Bullet
	e.emit(st, text, st.Marker)
}

// Number 输出编号步骤，首行前缀为 "{n}. "，续行与前缀宽度对齐。
func (e *Engine) Number(n int, text string) {
	st := e.cfg.Styles.Number
	e.emit(st, text, strconv.Itoa(n)+st.Marker)
}

// Gap 额外下移游标，用于小节之间的留白；负值会被忽略，游标永不上移。
func (e *Engine) Gap(points float64) {
	if points > 0 {
		e.y -= points
	}
}

// Finish 结束排版。游标低于下边距时返回 *OverflowError，调用方必须在序列化前检查。
func (e *Engine) Finish() (*Result, error) {
	if e.y < e.cfg.Page.Bottom {
		return nil, &OverflowError{FinalY: e.y, Bottom: e.cfg.Page.Bottom}
	}
	return &Result{
		Width:        e.cfg.Page.Width,
		Height:       e.cfg.Page.Height,
		Instructions: e.Instructions(),
		FinalY:       e.y,
		Bottom:       e.cfg.Page.Bottom,
		Fonts:        e.cfg.Fonts,
		Meta:         e.meta,
	}, nil
}

// emit 按样式折行并逐行输出指令；prefix 只加在首行，续行使用等宽空白。
func (e *Engine) emit(st Style, text, prefix string) {
	lines := []string{text}
	if st.Wrap > 0 {
		lines = Wrap(text, st.Wrap)
	}
	pad := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	x := e.cfg.Page.MarginX + st.Indent
	for i, line := range lines {
		lead := pad
		if i == 0 {
			lead = prefix
		}
		e.instructions = append(e.instructions, Instruction{
			Font: st.Font,
			Size: st.Size,
			X:    x,
			Y:    e.y,
			Text: lead + line,
		})
		e.y -= st.Leading
	}
	e.Gap(st.After)
}
