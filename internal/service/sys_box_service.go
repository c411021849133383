package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/mongo"
	"Socials/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SysBoxService interface {
	GetNotificationList(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.SysBoxDTO, error)
	GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error)
	MarkRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllRead(ctx context.Context, userID uint64) error
}

type sysBoxServiceImpl struct {
	sysBoxRepo mongo.SysBoxRepo
	userRepo   repository.UserRepo
}

func NewSysBoxService(sysBox mongo.SysBoxRepo, user repository.UserRepo) SysBoxService {
	return &sysBoxServiceImpl{
		sysBoxRepo: sysBox,
		userRepo:   user,
	}
}

// GetNotificationList 获取通知列表并补全发送者用户名
func (s *sysBoxServiceImpl) GetNotificationList(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.SysBoxDTO, error) {
	page, pageSize = normalizePage(page, pageSize)
	limit := int64(pageSize)
	offset := int64((page - 1) * pageSize)

	list, err := s.sysBoxRepo.GetNotificationList(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint64, 0, len(list))
	for _, m := range list {
		senderIDs = append(senderIDs, m.SenderID)
	}
	senders, err := s.userRepo.GetUserByIds(ctx, senderIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(senders))
	for _, u := range senders {
		names[u.ID] = u.Username
	}

	res := make([]*dto.SysBoxDTO, 0, len(list))
	for _, m := range list {
		name := names[m.SenderID]
		res = append(res, &dto.SysBoxDTO{
			ID:         m.ID.Hex(),
			SenderID:   m.SenderID,
			SenderName: name,
			Type:       m.Type,
			TargetID:   m.TargetID,
			Content:    notificationText(m.Type, name),
			IsRead:     m.IsRead,
			CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return res, nil
}

// GetUnreadCount 获取未读数
func (s *sysBoxServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error) {
	count, err := s.sysBoxRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.SysBoxUnreadDTO{UnreadCount: count}, nil
}

// MarkRead 标记单条已读
func (s *sysBoxServiceImpl) MarkRead(ctx context.Context, userID uint64, msgID string) error {
	objectID, err := primitive.ObjectIDFromHex(msgID)
	if err != nil {
		return ErrParamInvalid
	}

	notice, err := s.sysBoxRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			return ErrSysBoxNotFound
		}
		return err
	}

	if notice.ReceiverID != userID {
		return UnauthorizedError
	}

	if notice.IsRead {
		return nil
	}

	return s.sysBoxRepo.MarkAsRead(ctx, userID, objectID)
}

// MarkAllRead 一键已读
func (s *sysBoxServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.sysBoxRepo.MarkAllAsRead(ctx, userID)
}

func notificationText(typ int8, sender string) string {
	if sender == "" {
		sender = "有人"
	}
	switch typ {
	case consts.SysBoxTypeLike:
		return sender + " 赞了你的帖子"
	case consts.SysBoxTypeFollow:
		return sender + " 关注了你"
	default:
		return ""
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > consts.MaxPage {
		page = consts.MaxPage
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return page, pageSize
}
