package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	apperrors "github.com/ByLCY/onepage/errors"
	"github.com/ByLCY/onepage/layout"
)

func TestGenerateDefaultContent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "summary.pdf")
	err := generate(context.Background(), options{output: out, date: "2026-10-16", renderer: "native"})
	if err != nil {
		t.Fatalf("生成失败: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取输出失败: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) || !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Fatalf("输出不是完整的 PDF")
	}
	if !bytes.Contains(data, []byte("Generated from repository evidence on 2026-10-16")) {
		t.Fatalf("输出应包含 --date 指定的日期")
	}
}

func TestGenerateCanvasWithDebug(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		output:   filepath.Join(dir, "preview.pdf"),
		debug:    filepath.Join(dir, "debug", "layout.json"),
		renderer: "canvas",
	}
	if err := generate(context.Background(), opts); err != nil {
		t.Fatalf("生成失败: %v", err)
	}
	if _, err := os.Stat(opts.debug); err != nil {
		t.Fatalf("调试 JSON 未生成: %v", err)
	}
}

func TestGenerateOverflowWritesNothing(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("doc Long v1 { page {\n")
	for i := 0; i < 80; i++ {
		sb.WriteString("  body \"filler\"\n")
	}
	sb.WriteString("} }\n")
	in := filepath.Join(dir, "long.onepage")
	if err := os.WriteFile(in, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("写入输入失败: %v", err)
	}

	out := filepath.Join(dir, "long.pdf")
	err := generate(context.Background(), options{input: in, output: out})
	if !apperrors.Is(err, apperrors.ErrCodeLayoutOverflow) {
		t.Fatalf("期望 LAYOUT_OVERFLOW，实际 %v", err)
	}
	var overflow *layout.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("原始溢出错误应可通过 errors.As 取得")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("溢出时不应写出任何文件")
	}
}

func TestGenerateInputErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		opts options
		code apperrors.Code
	}{
		{"bad date", options{date: "16/10/2026"}, apperrors.ErrCodeInvalidInput},
		{"bad data", options{data: "{"}, apperrors.ErrCodeInvalidInput},
		{"bad renderer", options{renderer: "svg"}, apperrors.ErrCodeInvalidInput},
		{"missing input", options{input: filepath.Join(dir, "missing.onepage")}, apperrors.ErrCodeIO},
		{"missing config", options{config: filepath.Join(dir, "missing.toml")}, apperrors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.output = filepath.Join(dir, tt.name+".pdf")
			if err := generate(context.Background(), tt.opts); !apperrors.Is(err, tt.code) {
				t.Fatalf("期望 %s，实际 %v", tt.code, err)
			}
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "x.pdf")
	if err := generate(ctx, options{output: out}); err != context.Canceled {
		t.Fatalf("期望 context.Canceled，实际 %v", err)
	}
}

func TestConfigCommand(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"config"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config 命令失败: %v", err)
	}
	var cfg layout.Config
	if _, err := toml.Decode(buf.String(), &cfg); err != nil {
		t.Fatalf("输出不是合法 TOML: %v", err)
	}
	if cfg.Page.Top != 758 || cfg.Styles.Bullet.Wrap != 92 {
		t.Fatalf("默认配置不符: %+v", cfg)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("期望位置参数报错")
	}
}
