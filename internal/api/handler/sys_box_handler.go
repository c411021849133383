package handler

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/response"
	"Socials/internal/pkg/util"
	"Socials/internal/service"

	"github.com/gin-gonic/gin"
)

type SysBoxHandler struct {
	sysBoxService service.SysBoxService
}

func NewSysBoxHandler(s service.SysBoxService) *SysBoxHandler {
	return &SysBoxHandler{
		sysBoxService: s,
	}
}

// GetNotificationList 获取通知列表
func (h *SysBoxHandler) GetNotificationList(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64(CtxUserID)

	list, err := h.sysBoxService.GetNotificationList(c.Request.Context(), userID, page.Page, page.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// GetUnreadCount 获取未读数
func (h *SysBoxHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64(CtxUserID)

	unread, err := h.sysBoxService.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, unread)
}

// MarkRead 标记单条已读
func (h *SysBoxHandler) MarkRead(c *gin.Context) {
	var req dto.SysBoxReadDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64(CtxUserID)
	err := h.sysBoxService.MarkRead(c.Request.Context(), userID, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// MarkAllRead 一键已读
func (h *SysBoxHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64(CtxUserID)
	err := h.sysBoxService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
