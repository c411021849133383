package handler

import (
	"Socials/internal/pkg/response"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

// Home 首页：全部帖子与推荐关注
func (s *FeedHandler) Home(c *gin.Context) {
	feed, err := s.feedSvc.BuildHomeFeed(c.Request.Context(), c.GetUint64(CtxUserID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
