package util

import (
	"strconv"
	"strings"
)

// StrToUint64 解析路径或查询参数中的无符号 ID
func StrToUint64(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}
