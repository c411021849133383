package util

import (
	"Socials/internal/pkg/consts"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectContentType 按文件头识别真实类型，不信任客户端声明的 Content-Type
// 读取后 reader 会被复位到起始位置
func DetectContentType(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}

func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, consts.MimePrefixImage)
}
