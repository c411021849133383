package job

import (
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/logger"
	"Socials/internal/pkg/redis"
	"Socials/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const likeCountJobTimeout = 10 * time.Minute

// LikeCountJob 用 like_posts 的真实行数校正 posts.likes_count
type LikeCountJob struct {
	postRepo repository.PostRepo
}

func NewLikeCountJob(postRepo repository.PostRepo) *LikeCountJob {
	return &LikeCountJob{
		postRepo: postRepo,
	}
}

func (s *LikeCountJob) Run() {
	traceID := "job-like-count-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	ctx, cancel := context.WithTimeout(ctx, likeCountJobTimeout)
	defer cancel()

	fixed, err := s.Reconcile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "like count reconcile failed", "err", err)
		return
	}
	log.InfoContext(ctx, "like count reconcile finished", "fixed", fixed)
}

// Reconcile 多实例部署时只有拿到锁的实例执行，返回修正的帖子数
func (s *LikeCountJob) Reconcile(ctx context.Context) (int, error) {
	token := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.LikeCountJobLock, token, likeCountJobTimeout, 1)
	if err != nil {
		return 0, err
	}
	if !ok {
		log.InfoContext(ctx, "like count job is running elsewhere, skip")
		return 0, nil
	}
	defer redis.UnLock(context.Background(), consts.LikeCountJobLock, token)

	drifts, err := s.postRepo.GetLikeCountDrifts(ctx)
	if err != nil {
		return 0, err
	}

	// 扫描结果只作候选，逐帖在行锁内重算，避免覆盖扫描之后提交的点赞
	fixed := 0
	for _, d := range drifts {
		res, err := s.postRepo.RecountLikes(ctx, d.ID)
		if err != nil {
			log.ErrorContext(ctx, "recount likes error", "postID", d.ID, "err", err)
			continue
		}
		if res == nil || res.LikesCount == res.Actual {
			continue
		}
		log.WarnContext(ctx, "likes count drift fixed", "postID", d.ID, "stored", res.LikesCount, "actual", res.Actual)
		fixed++
	}
	return fixed, nil
}
