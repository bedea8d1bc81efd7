package utils

import (
	"bytes"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// MarshalIndentToString JSON编码为格式化字符串
func MarshalIndentToString(v any) string {
	bf := bytes.NewBuffer([]byte{})
	encoder := jsoniter.NewEncoder(bf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "\t")
	if err := encoder.Encode(v); err != nil {
		return ""
	}
	return strings.TrimRight(bf.String(), "\n")
}

// Truncate 截断过长的字符串,用于日志输出
// max 按字节计算,截断位置回退到完整字符边界
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
