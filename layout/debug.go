package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type debugDump struct {
	*Result
	Lines     int     `json:"lines"`
	Remaining float64 `json:"remaining"`
}

// WriteDebugJSON 将布局结果输出为 JSON，附带行数与剩余空间，便于调整配置。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	data, err := json.MarshalIndent(debugDump{
		Result:    res,
		Lines:     len(res.Instructions),
		Remaining: res.Remaining(),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
