package layout

// 该文件定义布局结果，供渲染器与调试 JSON 共用。

// 两种逻辑字体，渲染器负责把它们映射到真实字体。
const (
	FontRegular = "F1"
	FontBold    = "F2"
)

// Instruction 表示一条已定位的文本绘制指令。
// Text 保存原始文本，转义由 PDF 序列化器在生成内容流时完成。
type Instruction struct {
	Font string  `json:"font"`
	Size float64 `json:"size"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Result 保存单页布局的最终结果。
type Result struct {
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	Instructions []Instruction `json:"instructions"`
	// FinalY 为全部内容排完后的游标位置，便于诊断剩余空间。
	FinalY float64      `json:"finalY"`
	Bottom float64      `json:"bottom"`
	Fonts  FontSet      `json:"fonts"`
	Meta   DocumentMeta `json:"meta"`
}

// DocumentMeta 保存文档元信息，仅 canvas 后端写入 PDF Info。
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Creator string `json:"creator"`
}

// Remaining 返回底边距之上仍可使用的垂直空间（pt），溢出时为负。
func (r *Result) Remaining() float64 {
	return r.FinalY - r.Bottom
}
