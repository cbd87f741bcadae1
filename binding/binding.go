package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// DateLayout 是 ${date} 使用的日期格式（ISO 8601）。
const DateLayout = "2006-01-02"

// Scope 保存可在内容中引用的变量，键可以嵌套 map 与数组。
type Scope map[string]any

// NewScope 创建包含生成日期的变量集合：${date}、${year}。
func NewScope(now time.Time) Scope {
	return Scope{
		"date": now.Format(DateLayout),
		"year": now.Year(),
	}
}

// Merge 将外部数据（通常来自 --data JSON）并入当前集合，同名键以外部数据为准。
func (s Scope) Merge(data map[string]any) Scope {
	out := make(Scope, len(s)+len(data))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// Interpolate 将文本中的 ${path.to.value} 替换为集合中的值。
// 路径不存在时保留原占位符，便于在输出中发现问题。
func (s Scope) Interpolate(text string) string {
	if len(s) == 0 || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if val, ok := s.Lookup(path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// Lookup 解析形如 "repo.owners[0].name" 的路径。
func (s Scope) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = map[string]any(s)
	for _, segment := range strings.Split(path, ".") {
		name, rest, _ := strings.Cut(segment, "[")
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		if rest == "" {
			continue
		}
		for _, idx := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
			i, err := strconv.Atoi(idx)
			if err != nil {
				return nil, false
			}
			list, ok := current.([]any)
			if !ok || i < 0 || i >= len(list) {
				return nil, false
			}
			current = list[i]
		}
	}
	return current, true
}
