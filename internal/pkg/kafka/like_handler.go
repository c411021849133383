package kafka

import (
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/mongo"
	"Socials/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

type LikesHandler struct {
	userRepo   repository.UserRepo
	postRepo   repository.PostRepo
	sysBoxRepo mongo.SysBoxRepo
}

func NewLikesHandler(userRepo repository.UserRepo, postRepo repository.PostRepo, sysBox mongo.SysBoxRepo) *LikesHandler {
	return &LikesHandler{
		userRepo:   userRepo,
		postRepo:   postRepo,
		sysBoxRepo: sysBox,
	}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "like_posts")
	if err != nil {
		log.WarnContext(ctx, "skip like message", "offset", msg.Offset, "err", err)
		return nil
	}

	// 取消点赞不发通知，点赞数由事务维护
	if canalMsg.Type != INSERT {
		return nil
	}

	for _, row := range canalMsg.Data {
		if err = s.handleInsert(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

// handleInsert 给帖子作者发送点赞通知，自己给自己点赞不通知
func (s *LikesHandler) handleInsert(ctx context.Context, row map[string]interface{}) error {
	postID := StrToUint64(row["post_id"])
	username := StrToString(row["username"])
	if postID == 0 || username == "" {
		return nil
	}

	sender, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if sender == nil {
		return nil
	}

	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	// 帖子已被删除
	if post == nil || post.UserID == sender.ID {
		return nil
	}

	notification := &mongo.SysBoxModel{
		ReceiverID: post.UserID,
		SenderID:   sender.ID,
		Type:       consts.SysBoxTypeLike,
		TargetID:   postID,
		Content:    "赞了你的帖子",
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	if err = s.sysBoxRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create like notification", "postID", postID, "err", err)
		return err
	}

	log.InfoContext(ctx, "post like notified", "postID", postID, "senderID", sender.ID)
	return nil
}
