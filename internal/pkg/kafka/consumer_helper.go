package kafka

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize        = 32
	batchTimeout     = 1 * time.Second
	batchConcurrency = 8
	minRetryDelay    = 100 * time.Millisecond
	maxRetryDelay    = 5 * time.Second
)

// ErrTableMismatch 消息不属于当前消费者关心的表
var ErrTableMismatch = errors.New("table name not match")

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 攒批消费一个分区，满 batchSize 或到 batchTimeout 时处理一次
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	ctx := session.Context()
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if processBatch(ctx, batch, logic) {
			session.MarkMessage(batch[len(batch)-1], "")
		}
		batch = make([]*sarama.ConsumerMessage, 0, batchSize)
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息，全部成功才返回 true，会话结束时未完成的批次不提交位点
func processBatch(ctx context.Context, messages []*sarama.ConsumerMessage, logic LogicFunc) bool {
	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for _, msg := range messages {
		g.Go(func() error {
			return retryUntilDone(ctx, msg, logic)
		})
	}
	return g.Wait() == nil
}

// retryUntilDone 指数退避重试直到成功或 ctx 结束
func retryUntilDone(ctx context.Context, msg *sarama.ConsumerMessage, logic LogicFunc) error {
	delay := minRetryDelay
	for {
		err := logic(ctx, msg)
		if err == nil {
			return nil
		}
		log.ErrorContext(ctx, "process message error",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// ToCanalMessage 将kafka消息转换为canal消息结构体
// 表名不匹配返回 ErrTableMismatch，调用方应直接跳过而不是重试
func ToCanalMessage(msg *sarama.ConsumerMessage, tableName string) (*CanalMessage, error) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		return nil, err
	}
	if canalMsg.Table != tableName {
		return nil, ErrTableMismatch
	}
	return &canalMsg, nil
}
