package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	if err := c.ShouldBindJSON(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Signup(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	if err := s.userSvc.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint64(CtxUserID)

	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.ChangePassword(c.Request.Context(), userID, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
