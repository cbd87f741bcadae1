package layout

// 布局坐标统一使用 PDF 点（pt，1/72 英寸），原点位于页面左下角。
// canvas 预览后端以毫米为单位，这里提供两者的换算。

const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// ToMM 将点换算为毫米。
func ToMM(pt float64) float64 { return pt * PtToMm }

// ToPT 将毫米换算为点。
func ToPT(mm float64) float64 { return mm * MmToPt }
