package service

import (
	"context"
	"io"
)

// ObjectStorage 帖子图片、头像的对象存储
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
	GetPublicURL(objectName string) string
}
