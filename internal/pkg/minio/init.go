package minio

import (
	"Socials/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// MainBucket 帖子图片与头像所在的存储桶
	MainBucket string
)

const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// Init 初始化 MinIO 客户端，主存储桶不存在时创建并设置为公共读
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.MainBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("创建存储桶失败: %w", err)
		}
		if err = client.SetBucketPolicy(ctx, cfg.MainBucket, fmt.Sprintf(publicReadPolicy, cfg.MainBucket)); err != nil {
			return fmt.Errorf("设置存储桶策略失败: %w", err)
		}
		log.Info("已创建 MinIO 存储桶", "bucket", cfg.MainBucket)
	}

	Client = client
	MainBucket = cfg.MainBucket
	return nil
}
