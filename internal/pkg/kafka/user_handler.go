package kafka

import (
	"Socials/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// UsersHandler 将 users 表的变更同步到搜索索引
type UsersHandler struct {
	userESRepo es.UserRepo
}

func NewUsersHandler(userESRepo es.UserRepo) *UsersHandler {
	return &UsersHandler{
		userESRepo: userESRepo,
	}
}

func (s *UsersHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer setup")
	return nil
}

func (s *UsersHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer cleanup")
	return nil
}

func (s *UsersHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-user consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("process batch error", "err", err)
		return err
	}
	log.Info("topic-user consume claim end")
	return nil
}

func (s *UsersHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "users")
	if err != nil {
		log.WarnContext(ctx, "skip user message", "offset", msg.Offset, "err", err)
		return nil
	}

	for _, row := range canalMsg.Data {
		id := StrToUint64(row["id"])
		if id == 0 {
			continue
		}

		switch canalMsg.Type {
		case INSERT, UPDATE:
			doc := &es.UserES{
				ID:       id,
				Username: StrToString(row["username"]),
			}
			err = s.userESRepo.IndexUser(ctx, doc, canalMsg.ES)
		case DELETE:
			err = s.userESRepo.DeleteUser(ctx, id)
		default:
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
