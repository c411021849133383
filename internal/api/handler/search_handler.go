package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/response"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchSvc: searchSvc,
	}
}

// SearchPage 未提交搜索时返回空结果
func (s *SearchHandler) SearchPage(c *gin.Context) {
	response.Success(c, []*dto.ProfileDTO{})
}

func (s *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchProfileDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	profiles, err := s.searchSvc.SearchProfiles(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profiles)
}
