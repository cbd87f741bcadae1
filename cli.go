package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/onepage/binding"
	"github.com/ByLCY/onepage/content"
	"github.com/ByLCY/onepage/dsl"
	apperrors "github.com/ByLCY/onepage/errors"
	"github.com/ByLCY/onepage/layout"
	"github.com/ByLCY/onepage/renderer"
	canvasrenderer "github.com/ByLCY/onepage/renderer/canvas"
	pdfrenderer "github.com/ByLCY/onepage/renderer/pdf"
)

var version = "dev"

const defaultOutput = "output/pdf/theatre-ai-app-summary-one-page.pdf"

// options 汇总一次生成所需的全部命令行参数。
type options struct {
	input      string
	output     string
	config     string
	renderer   string
	debug      string
	data       string
	date       string
	checkWidth bool
}

func newRootCmd() *cobra.Command {
	var (
		opts    options
		verbose bool
	)

	root := &cobra.Command{
		Use:           "onepage",
		Short:         "生成单页 PDF 摘要",
		Long:          "onepage 将内容 DSL 排版到一页 US Letter 上，并输出使用标准字体的最小 PDF 1.4 文件。",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate("onepage {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	flags := root.Flags()
	flags.StringVarP(&opts.input, "in", "i", "", "内容 DSL 文件路径（默认使用内置摘要）")
	flags.StringVarP(&opts.output, "out", "o", defaultOutput, "PDF 输出路径")
	flags.StringVarP(&opts.config, "config", "c", "", "布局配置 TOML 路径")
	flags.StringVar(&opts.renderer, "renderer", "native", "渲染后端：native 或 canvas")
	flags.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	flags.StringVar(&opts.data, "data", "", "绑定到内容的 JSON 数据")
	flags.StringVar(&opts.date, "date", "", "生成日期 YYYY-MM-DD（默认今天）")
	flags.BoolVar(&opts.checkWidth, "check-width", false, "按真实字体度量检查是否有行超出右边距")

	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "以 TOML 输出默认布局配置",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layout.EncodeConfig(cmd.OutOrStdout(), layout.DefaultConfig())
		},
	}
}

// generate 串联配置、解析、绑定、布局与渲染，成功后写出 PDF。
func generate(ctx context.Context, opts options) error {
	res, err := buildLayout(ctx, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	if opts.debug != "" {
		if err := layout.WriteDebugJSON(res, opts.debug); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeIO, err, "输出调试 JSON 失败")
		}
		logger.Debug("已写出调试 JSON", "path", opts.debug)
	}

	if opts.checkWidth {
		if err := checkWidths(res); err != nil {
			return err
		}
	}

	r, err := newRenderer(opts.renderer)
	if err != nil {
		return err
	}
	p := newProgress(logger)
	pdfBytes, err := r.Render(res)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeRender, err, "渲染 PDF 失败")
	}
	p.done("渲染完成", "renderer", opts.renderer, "bytes", len(pdfBytes))

	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, err, "创建输出目录失败")
	}
	if err := os.WriteFile(opts.output, pdfBytes, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeIO, err, "写入 PDF 文件失败")
	}

	printSuccess("已生成 PDF（剩余 %.2fpt）", res.Remaining())
	printFile(opts.output)
	return nil
}

func buildLayout(ctx context.Context, opts options) (*layout.Result, error) {
	logger := loggerFromContext(ctx)

	cfg := layout.DefaultConfig()
	if opts.config != "" {
		loaded, err := layout.LoadConfig(opts.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Debug("已加载布局配置", "path", opts.config)
	}

	doc, err := loadDocument(opts.input)
	if err != nil {
		return nil, err
	}

	scope, err := newScope(opts)
	if err != nil {
		return nil, err
	}

	p := newProgress(logger)
	res, err := layout.Build(doc, scope, cfg)
	if err != nil {
		var overflow *layout.OverflowError
		if errors.As(err, &overflow) {
			return nil, apperrors.Wrap(apperrors.ErrCodeLayoutOverflow, err, "内容无法排入单页，超出 %.2fpt", overflow.Bottom-overflow.FinalY)
		}
		return nil, err
	}
	p.done("布局完成", "lines", len(res.Instructions), "finalY", res.FinalY, "remaining", res.Remaining())
	return res, nil
}

func loadDocument(path string) (*dsl.Document, error) {
	if path == "" {
		doc, err := content.ParseDefault()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidContent, err, "解析内置内容失败")
		}
		return doc, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, err, "无法打开 DSL 文件 %s", path)
	}
	defer file.Close()

	doc, err := dsl.Parse(path, file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidContent, err, "解析 DSL 失败")
	}
	return doc, nil
}

func newScope(opts options) (binding.Scope, error) {
	now := time.Now()
	if opts.date != "" {
		d, err := time.Parse(binding.DateLayout, opts.date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "--date 需要 YYYY-MM-DD 格式")
		}
		now = d
	}
	scope := binding.NewScope(now)
	if opts.data == "" {
		return scope, nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(opts.data), &data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "解析 data JSON 失败")
	}
	return scope.Merge(data), nil
}

func newRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "", "native":
		return pdfrenderer.NewRenderer(), nil
	case "canvas":
		return canvasrenderer.NewRenderer(), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "未知的渲染后端 %q（可选 native、canvas）", name)
	}
}

// checkWidths 用真实字体度量复查折行结果，只告警不失败。
func checkWidths(res *layout.Result) error {
	overruns, err := canvasrenderer.NewRenderer().Overruns(res)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeRender, err, "测量文本宽度失败")
	}
	for _, o := range overruns {
		printWarning("第 %d 行超出右边距 %.1fpt: %s", o.Index+1, o.Width-o.Limit, truncate(o.Text, 48))
	}
	if len(overruns) == 0 {
		printSuccess("所有行均在右边距之内")
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return fmt.Sprintf("%s…", string(r[:n]))
}
