package es

import (
	"Socials/internal/api/config"
	"Socials/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var UserIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保用户索引存在
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	UserIndex = elasticCfg.Indices.UserIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport:     http.DefaultTransport,
			SlowThreshold: 500 * time.Millisecond,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensureUserIndex(ctx)
}

func ensureUserIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(UserIndex).Do(ctx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", UserIndex, err)
	}
	if exists {
		return nil
	}

	_, err = Client.Indices.Create(UserIndex).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"id":       types.NewUnsignedLongNumberProperty(),
				"username": types.NewKeywordProperty(),
			},
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("create index %s: %w", UserIndex, err)
	}
	log.Info("Elasticsearch index created", "index", UserIndex)
	return nil
}
