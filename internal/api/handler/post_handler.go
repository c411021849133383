package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"
	"io"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// CreatePost multipart 字段 content 与可选的 image
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64(CtxUserID)

	var req dto.PostBaseDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	file, err := formImage(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}
	var image io.Reader
	if file != nil {
		defer func() {
			_ = file.Close()
		}()
		image = file
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PostBaseDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64(CtxUserID), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), c.GetUint64(CtxUserID), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
