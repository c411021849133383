package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

// LikePost 切换点赞状态，携带 Idempotency-Key 的重放请求返回首次结果
func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.actionSvc.ToggleLikeOnce(
		c.Request.Context(),
		postID,
		c.GetString(CtxUsername),
		c.GetHeader(consts.IdempotencyHeader),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := s.actionSvc.GetComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	postID, err := paramID(c, "post_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCommentDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), c.GetUint64(CtxUserID), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.actionSvc.DeleteComment(c.Request.Context(), c.GetUint64(CtxUserID), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
