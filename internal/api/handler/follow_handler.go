package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc  service.FollowService
	profileSvc service.ProfileService
}

func NewFollowHandler(followSvc service.FollowService, profileSvc service.ProfileService) *FollowHandler {
	return &FollowHandler{
		followSvc:  followSvc,
		profileSvc: profileSvc,
	}
}

// Follow 关注/取消关注，关注者固定为当前登录用户的主页，忽略请求体中的其他身份字段
func (s *FollowHandler) Follow(c *gin.Context) {
	var req dto.FollowDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	viewer, err := s.profileSvc.GetOrCreate(ctx, c.GetUint64(CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}

	following, err := s.followSvc.ToggleFollow(ctx, viewer.ID, req.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := s.followSvc.GetFollowerCount(ctx, req.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	res := &dto.FollowResultDTO{
		Following:     following,
		ButtonText:    consts.FollowButtonText,
		FollowerCount: count,
	}
	if following {
		res.ButtonText = consts.UnFollowButtonText
	}
	response.Success(c, res)
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	s.listCommon(c, s.followSvc.GetFollowers)
}

func (s *FollowHandler) GetFollowings(c *gin.Context) {
	s.listCommon(c, s.followSvc.GetFollowings)
}

func (s *FollowHandler) listCommon(c *gin.Context, fetch func(ctx context.Context, profileID uint64, limit, offset int) ([]*dto.FollowEdgeDTO, error)) {
	profileID, err := paramID(c, "profile_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var page dto.PageDTO
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, offset := limitOffset(&page)

	edges, err := fetch(c.Request.Context(), profileID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, edges)
}
