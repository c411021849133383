package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
	feedSvc    service.FeedService
}

func NewProfileHandler(profileSvc service.ProfileService, feedSvc service.FeedService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
		feedSvc:    feedSvc,
	}
}

// GetMyProfile 当前用户的主页，不存在时自动创建
func (s *ProfileHandler) GetMyProfile(c *gin.Context) {
	profile, err := s.profileSvc.GetOrCreate(c.Request.Context(), c.GetUint64(CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// GetProfilePage 他人主页：帖子、关注按钮与粉丝数
func (s *ProfileHandler) GetProfilePage(c *gin.Context) {
	profileID, err := paramID(c, "profile_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.feedSvc.BuildProfilePage(c.Request.Context(), c.GetUint64(CtxUserID), profileID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ProfileHandler) Friends(c *gin.Context) {
	profiles, err := s.profileSvc.ListProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profiles)
}

func (s *ProfileHandler) CreateProfile(c *gin.Context) {
	var req dto.ProfileBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.profileSvc.CreateProfile(c.Request.Context(), c.GetUint64(CtxUserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.profileSvc.UpdateProfile(c.Request.Context(), c.GetUint64(CtxUserID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// UploadAvatar multipart 字段 file
func (s *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, err := formImage(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	if file == nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	profile, err := s.profileSvc.UpdateProfilePic(c.Request.Context(), c.GetUint64(CtxUserID), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
