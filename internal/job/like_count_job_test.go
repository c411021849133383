package job

import (
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/database"
	"Socials/internal/pkg/redis"
	"Socials/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) (*gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db, mr
}

func TestLikeCountJob_FixesDrift(t *testing.T) {
	db, _ := setup(t)
	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	drifted := &model.Post{UserID: user.ID, Content: "a", LikesCount: 5}
	correct := &model.Post{UserID: user.ID, Content: "b", LikesCount: 1}
	require.NoError(t, db.Create(drifted).Error)
	require.NoError(t, db.Create(correct).Error)
	require.NoError(t, db.Create(&model.LikePost{PostID: drifted.ID, Username: "bob"}).Error)
	require.NoError(t, db.Create(&model.LikePost{PostID: correct.ID, Username: "bob"}).Error)

	j := NewLikeCountJob(repository.NewPostRepo(db))
	fixed, err := j.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	var got model.Post
	require.NoError(t, db.First(&got, drifted.ID).Error)
	assert.EqualValues(t, 1, got.LikesCount)

	fixed, err = j.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fixed)
}

func TestLikeCountJob_SkipsWhenLocked(t *testing.T) {
	db, mr := setup(t)
	require.NoError(t, mr.Set(consts.LikeCountJobLock, "other"))
	mr.SetTTL(consts.LikeCountJobLock, time.Minute)

	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&model.Post{UserID: user.ID, Content: "a", LikesCount: 3}).Error)

	fixed, err := NewLikeCountJob(repository.NewPostRepo(db)).Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fixed)

	// 锁仍属于其他实例
	val, err := mr.Get(consts.LikeCountJobLock)
	require.NoError(t, err)
	assert.Equal(t, "other", val)
}

// scanThenLikeRepo 在扫描出候选之后插入一次点赞
type scanThenLikeRepo struct {
	repository.PostRepo
	afterScan func()
}

func (r *scanThenLikeRepo) GetLikeCountDrifts(ctx context.Context) ([]*repository.LikeCountDrift, error) {
	drifts, err := r.PostRepo.GetLikeCountDrifts(ctx)
	if err == nil && r.afterScan != nil {
		r.afterScan()
	}
	return drifts, err
}

func TestLikeCountJob_KeepsLikeCommittedAfterScan(t *testing.T) {
	db, _ := setup(t)
	ctx := context.Background()
	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	post := &model.Post{UserID: user.ID, Content: "a", LikesCount: 4}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&model.LikePost{PostID: post.ID, Username: "bob"}).Error)

	repo := &scanThenLikeRepo{PostRepo: repository.NewPostRepo(db)}
	repo.afterScan = func() {
		liked, _, err := repository.NewPostActionRepo(db).ToggleLike(ctx, post.ID, "carol")
		require.NoError(t, err)
		require.True(t, liked)
	}

	fixed, err := NewLikeCountJob(repo).Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	var rows int64
	require.NoError(t, db.Model(&model.LikePost{}).Where("post_id = ?", post.ID).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
	assert.EqualValues(t, rows, got.LikesCount)
}
