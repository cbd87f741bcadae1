package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var builtin = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "regular"/"bold"，也可带 "embed:" 前缀。
// 逻辑字体名 F1/F2 分别对应 regular/bold。
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "embed:"))
	switch key {
	case "f1":
		key = "regular"
	case "f2":
		key = "bold"
	}
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("没有名为 %s 的内置字体", name)
	}
	return data, nil
}
