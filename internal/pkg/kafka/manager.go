package kafka

import (
	"Socials/internal/api/config"
	"Socials/internal/pkg/es"
	"Socials/internal/pkg/mongo"
	"Socials/internal/repository"
	"context"
	log "log/slog"
	"sync"

	"github.com/IBM/sarama"
)

type topicConsumer struct {
	name    string
	topic   string
	group   sarama.ConsumerGroup
	handler sarama.ConsumerGroupHandler
}

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	consumers []*topicConsumer
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	userESRepo es.UserRepo,
	userDBRepo repository.UserRepo,
	profileDBRepo repository.ProfileRepo,
	postDBRepo repository.PostRepo,
	sysBoxRepo mongo.SysBoxRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	type consumerSpec struct {
		name    string
		cfg     config.KafkaTopicConsumer
		handler sarama.ConsumerGroupHandler
	}
	specs := []consumerSpec{
		{"like_posts", cfg.KafkaLikeConsumer, NewLikesHandler(userDBRepo, postDBRepo, sysBoxRepo)},
		{"profile_follows", cfg.KafkaFollowConsumer, NewFollowsHandler(profileDBRepo, sysBoxRepo)},
	}
	// 未启用 Elasticsearch 时不同步用户索引
	if userESRepo != nil {
		specs = append(specs, consumerSpec{"users", cfg.KafkaUserConsumer, NewUsersHandler(userESRepo)})
	}

	m := &ConsumerManager{}
	for _, spec := range specs {
		group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, spec.cfg.GroupID, saramaCfg)
		if err != nil {
			m.close()
			return nil, err
		}
		m.consumers = append(m.consumers, &topicConsumer{
			name:    spec.name,
			topic:   spec.cfg.Topic,
			group:   group,
			handler: spec.handler,
		})
	}
	return m, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, c := range m.consumers {
		wg.Add(1)
		go func(c *topicConsumer) {
			defer wg.Done()
			log.Info("Kafka consumer started", "name", c.name, "topic", c.topic)
			for {
				if err := c.group.Consume(ctx, []string{c.topic}, c.handler); err != nil {
					log.Error("Error from consumer", "name", c.name, "err", err)
				}
				if ctx.Err() != nil {
					return
				}
			}
		}(c)

		go func(c *topicConsumer) {
			for err := range c.group.Errors() {
				log.Error("Kafka consumer group error", "name", c.name, "err", err)
			}
		}(c)
	}

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")
	m.close()
	wg.Wait()
	return nil
}

func (m *ConsumerManager) close() {
	for _, c := range m.consumers {
		if err := c.group.Close(); err != nil {
			log.Error("Failed to close consumer", "name", c.name, "err", err)
		}
	}
}
