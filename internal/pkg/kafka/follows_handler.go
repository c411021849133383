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

type FollowsHandler struct {
	profileRepo repository.ProfileRepo
	sysBoxRepo  mongo.SysBoxRepo
}

func NewFollowsHandler(profileRepo repository.ProfileRepo, sysBox mongo.SysBoxRepo) *FollowsHandler {
	return &FollowsHandler{
		profileRepo: profileRepo,
		sysBoxRepo:  sysBox,
	}
}

func (s *FollowsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("profile follows consumer setup")
	return nil
}

func (s *FollowsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("profile follows consumer cleanup")
	return nil
}

func (s *FollowsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-profile-follows consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-profile-follows process batch error", "err", err)
		return err
	}
	log.Info("topic-profile-follows consume claim end")
	return nil
}

func (s *FollowsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "profile_follows")
	if err != nil {
		log.WarnContext(ctx, "skip follow message", "offset", msg.Offset, "err", err)
		return nil
	}

	if canalMsg.Type != INSERT {
		return nil
	}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		if followerID == 0 || followingID == 0 || followerID == followingID {
			continue
		}
		if err = s.notify(ctx, followerID, followingID); err != nil {
			return err
		}
	}
	return nil
}

// notify 关注关系建立在主页之间，通知需要落到主页所属的用户上
func (s *FollowsHandler) notify(ctx context.Context, followerID, followingID uint64) error {
	profiles, err := s.profileRepo.GetProfilesByIDs(ctx, []uint64{followerID, followingID})
	if err != nil {
		return err
	}

	userOf := make(map[uint64]uint64, len(profiles))
	for _, p := range profiles {
		userOf[p.ID] = p.UserID
	}
	sender, okSender := userOf[followerID]
	receiver, okReceiver := userOf[followingID]
	// 主页已不存在，关系也会随之失效
	if !okSender || !okReceiver {
		return nil
	}

	notification := &mongo.SysBoxModel{
		ReceiverID: receiver,
		SenderID:   sender,
		Type:       consts.SysBoxTypeFollow,
		TargetID:   followerID,
		Content:    "关注了你",
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	if err = s.sysBoxRepo.CreateNotification(ctx, notification); err != nil {
		log.ErrorContext(ctx, "failed to create follow notification", "followerID", followerID, "err", err)
		return err
	}
	return nil
}
