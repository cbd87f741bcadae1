package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/onepage/fonts"
	"github.com/ByLCY/onepage/layout"
	"github.com/ByLCY/onepage/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
//
// Unlike the native serializer it embeds TrueType fonts, so it is meant for
// previews and for measuring real text widths. The logical fonts F1/F2 map to
// the bundled Go fonts unless overridden through Options.
type Renderer struct {
	// injected resources, keyed by logical font name (F1, F2)
	fontBlobs map[string][]byte

	fontMu       sync.Mutex
	fontFamilies map[string]*fontFamilyEntry
}

var _ renderer.Renderer = (*Renderer)(nil)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// Options configures the canvas renderer.
type Options struct {
	Fonts map[string]Resource // TrueType data for F1 and/or F2
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Overrun reports a line whose measured width crosses the right margin.
type Overrun struct {
	Index int     // position in Result.Instructions
	Text  string  // line text
	Width float64 // measured width in pt
	Limit float64 // available width in pt
}

// NewRenderer creates a canvas renderer using the bundled fonts.
func NewRenderer() *Renderer {
	r, _ := NewRendererWithOptions(Options{})
	return r
}

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) (*Renderer, error) {
	r := &Renderer{
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*fontFamilyEntry{},
	}
	for name, res := range opts.Fonts {
		if name != layout.FontRegular && name != layout.FontBold {
			return nil, fmt.Errorf("未知的逻辑字体 %q（仅支持 %s/%s）", name, layout.FontRegular, layout.FontBold)
		}
		if len(res.Bytes) > 0 {
			r.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := os.ReadFile(res.Path)
			if err != nil {
				return nil, fmt.Errorf("读取字体 %s 失败: %w", res.Path, err)
			}
			r.fontBlobs[name] = data
		}
	}
	return r, nil
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %gx%g", result.Width, result.Height)
	}

	widthMM, heightMM := layout.ToMM(result.Width), layout.ToMM(result.Height)
	var buf bytes.Buffer
	writer := pdf.New(&buf, widthMM, heightMM, nil)
	r.applyMeta(writer, result.Meta)

	c := canvas.New(widthMM, heightMM)
	ctx := canvas.NewContext(c)
	// 默认坐标系原点在左下角、y 轴向上，与布局坐标一致，只需 pt→mm 换算
	for _, in := range result.Instructions {
		if err := r.drawInstruction(ctx, in); err != nil {
			return nil, err
		}
	}
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	writer.SetInfo(meta.Title, meta.Subject, "", meta.Author, meta.Creator)
}

func (r *Renderer) drawInstruction(ctx *canvas.Context, in layout.Instruction) error {
	if in.Text == "" {
		return nil
	}
	face, err := r.fontFace(in.Font, in.Size)
	if err != nil {
		return err
	}
	// Instruction.Y 为基线位置
	line := canvas.NewTextLine(face, in.Text, canvas.Left)
	ctx.DrawText(layout.ToMM(in.X), layout.ToMM(in.Y), line)
	return nil
}

// TextWidth measures the rendered width of an instruction in pt.
func (r *Renderer) TextWidth(in layout.Instruction) (float64, error) {
	face, err := r.fontFace(in.Font, in.Size)
	if err != nil {
		return 0, err
	}
	return layout.ToPT(face.TextWidth(in.Text)), nil
}

// Overruns measures every line against a right margin mirroring the smallest
// left x on the page. The character budgets used for wrapping only
// approximate widths, so this catches lines that would spill off the page.
func (r *Renderer) Overruns(result *layout.Result) ([]Overrun, error) {
	if result == nil || len(result.Instructions) == 0 {
		return nil, nil
	}
	left := math.Inf(1)
	for _, in := range result.Instructions {
		left = math.Min(left, in.X)
	}
	right := result.Width - left

	var out []Overrun
	for i, in := range result.Instructions {
		w, err := r.TextWidth(in)
		if err != nil {
			return nil, err
		}
		if limit := right - in.X; w > limit {
			out = append(out, Overrun{Index: i, Text: in.Text, Width: w, Limit: limit})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Width-out[i].Limit > out[j].Width-out[j].Limit
	})
	return out, nil
}

// fontFace 的 size 入参为 pt，canvas 的字体面同样以 pt 计。
func (r *Renderer) fontFace(font string, size float64) (*canvas.FontFace, error) {
	family, style, err := r.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return family.Face(size, textColor, style, canvas.FontNormal), nil
}

var textColor color.Color = canvas.RGBA(0, 0, 0, 1)

func (r *Renderer) ensureFontFamily(font string) (*canvas.FontFamily, canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.fontFamilies[font]; ok {
		return entry.family, entry.style, nil
	}

	style := canvas.FontRegular
	if font == layout.FontBold {
		style = canvas.FontBold
	}
	data, err := r.loadFontBytes(font)
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	family := canvas.NewFontFamily("onepage-" + font)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("加载字体 %s 失败: %w", font, err)
	}

	r.fontFamilies[font] = &fontFamilyEntry{family: family, style: style}
	return family, style, nil
}

func (r *Renderer) loadFontBytes(font string) ([]byte, error) {
	if blob, ok := r.fontBlobs[font]; ok {
		return blob, nil
	}
	return fonts.Load(font)
}
