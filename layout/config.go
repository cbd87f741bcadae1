package layout

import (
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/ByLCY/onepage/errors"
)

// Config 描述单页布局的全部几何参数，构造 Engine 后不再改变。
// 坐标单位为 pt，原点位于页面左下角；Top/Bottom 是游标的起点与下限。
type Config struct {
	Page   PageConfig `toml:"page" json:"page"`
	Fonts  FontSet    `toml:"fonts" json:"fonts"`
	Styles Styles     `toml:"styles" json:"styles"`
}

// PageConfig 记录页面尺寸与边距。
type PageConfig struct {
	Width   float64 `toml:"width" json:"width"`
	Height  float64 `toml:"height" json:"height"`
	MarginX float64 `toml:"margin_x" json:"marginX"`
	Top     float64 `toml:"top" json:"top"`
	Bottom  float64 `toml:"bottom" json:"bottom"`
}

// FontSet 将两种逻辑字体映射到 PDF 标准 14 字体名。
type FontSet struct {
	Regular string `toml:"regular" json:"regular"`
	Bold    string `toml:"bold" json:"bold"`
}

// Styles 是 {内容类型 → 样式} 的配置表。
type Styles struct {
	Title    Style `toml:"title" json:"title"`
	Subtitle Style `toml:"subtitle" json:"subtitle"`
	Section  Style `toml:"section" json:"section"`
	Body     Style `toml:"body" json:"body"`
	Bullet   Style `toml:"bullet" json:"bullet"`
	Number   Style `toml:"number" json:"number"`
}

// Style 描述一种内容类型的排版参数。
//   - Indent 相对于 Page.MarginX；
//   - Wrap 为每行字符预算，0 表示不折行；
//   - Marker 为首行前缀（number 类型下为序号后缀，例如 ". "）；
//   - After 为段落结束后的额外下移量。
type Style struct {
	Font    string  `toml:"font" json:"font"`
	Size    float64 `toml:"size" json:"size"`
	Indent  float64 `toml:"indent" json:"indent"`
	Leading float64 `toml:"leading" json:"leading"`
	Wrap    int     `toml:"wrap" json:"wrap"`
	Marker  string  `toml:"marker" json:"marker,omitempty"`
	After   float64 `toml:"after" json:"after,omitempty"`
}

// DefaultConfig 返回 US Letter 单页摘要使用的默认参数。
func DefaultConfig() Config {
	return Config{
		Page: PageConfig{
			Width:   612,
			Height:  792,
			MarginX: 54,
			Top:     758,
			Bottom:  48,
		},
		Fonts: FontSet{
			Regular: "Helvetica",
			Bold:    "Helvetica-Bold",
		},
		Styles: Styles{
			Title:    Style{Font: FontBold, Size: 16, Leading: 20},
			Subtitle: Style{Font: FontRegular, Size: 9.5, Leading: 12, Wrap: 95, After: 4},
			Section:  Style{Font: FontBold, Size: 11.5, Leading: 14},
			Body:     Style{Font: FontRegular, Size: 9.6, Leading: 12, Wrap: 100},
			Bullet:   Style{Font: FontRegular, Size: 9.6, Indent: 8, Leading: 12, Wrap: 92, Marker: "- "},
			Number:   Style{Font: FontRegular, Size: 9.6, Indent: 8, Leading: 12, Wrap: 90, Marker: ". "},
		},
	}
}

// LoadConfig 在默认参数之上叠加 TOML 文件中的取值。
// 未识别的键视为错误，避免拼写错误被静默忽略。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "解析布局配置 %s 失败", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig, "布局配置 %s 含有未知字段: %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EncodeConfig 将配置写成 TOML，可作为自定义配置的起点。
func EncodeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate 检查几何参数是否自洽。
func (c Config) Validate() error {
	p := c.Page
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"page.width", p.Width},
		{"page.height", p.Height},
		{"page.margin_x", p.MarginX},
		{"page.top", p.Top},
		{"page.bottom", p.Bottom},
	} {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "页面尺寸必须为正数: %gx%g", p.Width, p.Height)
	}
	if p.Bottom < 0 || p.Bottom >= p.Top || p.Top > p.Height {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "需要 0 <= bottom < top <= height，实际 bottom=%g top=%g height=%g", p.Bottom, p.Top, p.Height)
	}
	if p.MarginX < 0 || p.MarginX >= p.Width {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "左边距 %g 超出页面宽度", p.MarginX)
	}
	if err := validateFontName("fonts.regular", c.Fonts.Regular); err != nil {
		return err
	}
	if err := validateFontName("fonts.bold", c.Fonts.Bold); err != nil {
		return err
	}
	for _, ns := range c.Styles.named() {
		if err := ns.style.validate(ns.name); err != nil {
			return err
		}
	}
	return nil
}

type namedStyle struct {
	name  string
	style Style
}

func (s Styles) named() []namedStyle {
	return []namedStyle{
		{"title", s.Title},
		{"subtitle", s.Subtitle},
		{"section", s.Section},
		{"body", s.Body},
		{"bullet", s.Bullet},
		{"number", s.Number},
	}
}

func (s Style) validate(name string) error {
	if s.Font != FontRegular && s.Font != FontBold {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "styles.%s.font 必须为 %s 或 %s，实际 %q", name, FontRegular, FontBold, s.Font)
	}
	for _, f := range []struct {
		field string
		v     float64
	}{
		{"size", s.Size},
		{"leading", s.Leading},
		{"indent", s.Indent},
		{"after", s.After},
	} {
		if err := checkFinite("styles."+name+"."+f.field, f.v); err != nil {
			return err
		}
	}
	if s.Size <= 0 || s.Leading <= 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "styles.%s 的 size 与 leading 必须为正数", name)
	}
	if s.Wrap < 0 || s.After < 0 || s.Indent < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "styles.%s 的 wrap/after/indent 不能为负数", name)
	}
	return nil
}

// checkFinite 拒绝 NaN 与 ±Inf。
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s 必须为有限数值，实际 %g", name, v)
	}
	return nil
}

// pdfNameDelimiters 是 PDF 名称中不能直接出现的空白与分隔符。
const pdfNameDelimiters = " \t\r\n\f\x00()<>[]{}/%#"

// validateFontName 要求字体名可以原样写成 PDF 名称对象（/BaseFont /Name）。
func validateFontName(field, name string) error {
	if name == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s 不能为空", field)
	}
	for _, r := range name {
		if r < 0x21 || r > 0x7e || strings.ContainsRune(pdfNameDelimiters, r) {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s 含有 PDF 名称不允许的字符: %q", field, name)
		}
	}
	return nil
}
