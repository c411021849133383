package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/util"
	"Socials/internal/service"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// 由 AuthMiddleware 写入 gin.Context
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

func paramID(c *gin.Context, key string) (uint64, error) {
	id, err := util.StrToUint64(c.Param(key))
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

func bearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}

// limitOffset 将页码换算为 limit/offset，page 从 1 开始
func limitOffset(p *dto.PageDTO) (int, int) {
	page, size := p.Page, p.PageSize
	if page < 1 {
		page = 1
	}
	if page > consts.MaxPage {
		page = consts.MaxPage
	}
	if size < 1 {
		size = consts.DefaultPageSize
	}
	if size > consts.MaxPageSize {
		size = consts.MaxPageSize
	}
	return size, (page - 1) * size
}

// formImage 读取可选的图片字段，未上传返回 nil
// 调用方负责关闭返回的文件
func formImage(c *gin.Context, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, service.ErrParamInvalid
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}

	contentType, err := util.DetectContentType(file)
	if err != nil || !util.IsImage(contentType) {
		_ = file.Close()
		return nil, service.ErrFileNotSupported
	}
	return file, nil
}
