package repository

import (
	"Socials/internal/model"
	"Socials/internal/pkg/database"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUserWithProfile(t *testing.T, db *gorm.DB, username string) (*model.User, *model.Profile) {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	profile := &model.Profile{UserID: user.ID}
	require.NoError(t, db.Create(profile).Error)
	return user, profile
}

func TestMigrateIndexes(t *testing.T) {
	db := newTestDB(t)

	// SQLite 的索引名在库内全局唯一，重复迁移也不能冲突
	require.NoError(t, database.Migrate(db))

	migrator := db.Migrator()
	assert.True(t, migrator.HasIndex(&model.User{}, "idx_users_username"))
	assert.True(t, migrator.HasIndex(&model.User{}, "idx_users_email"))
	assert.True(t, migrator.HasIndex(&model.Profile{}, "idx_profiles_user_id"))
	assert.True(t, migrator.HasIndex(&model.Post{}, "idx_posts_user_id"))
	assert.True(t, migrator.HasIndex(&model.LikePost{}, "idx_like_posts_post_username"))
	assert.True(t, migrator.HasIndex(&model.Comment{}, "idx_comments_post_id"))
	assert.True(t, migrator.HasIndex(&model.ProfileFollow{}, "idx_profile_follows_following_id"))
}

func TestUserRepoDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &model.User{Username: "alice", Email: "a@example.com", Password: "x"}))

	err := repo.CreateUser(ctx, &model.User{Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@example.com", got.Email)

	missing, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProfileRepoGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	user := &model.User{Username: "bob", Email: "b@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	first, err := repo.GetOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)
	second, err := repo.GetOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "bob", second.User.Username)

	var count int64
	require.NoError(t, db.Model(&model.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	err = repo.CreateProfile(ctx, &model.Profile{UserID: user.ID})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestProfileRepoSearchByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)
	ctx := context.Background()

	_, pAlice := seedUserWithProfile(t, db, "Alice")
	_, pMalik := seedUserWithProfile(t, db, "malik")
	seedUserWithProfile(t, db, "bob")
	seedUserWithProfile(t, db, "under_score")

	got, err := repo.SearchByUsername(ctx, "LI")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, pAlice.ID, got[0].ID)
	assert.Equal(t, pMalik.ID, got[1].ID)

	got, err = repo.SearchByUsername(ctx, "_")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "under_score", got[0].User.Username)

	got, err = repo.SearchByUsername(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFollowRepoToggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepo(db)
	ctx := context.Background()

	_, a := seedUserWithProfile(t, db, "a")
	_, b := seedUserWithProfile(t, db, "b")

	following, err := repo.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	ok, err := repo.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsFollowing(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	followers, err := repo.GetFollowerCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)
	followings, err := repo.GetFollowingCount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followings)

	following, err = repo.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followers, err = repo.GetFollowerCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, followers)

	_, err = repo.ToggleFollow(ctx, a.ID, 9999)
	assert.ErrorIs(t, err, ErrProfileMissing)
}

func TestPostActionRepoToggleLike(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostActionRepo(db)
	ctx := context.Background()

	user, _ := seedUserWithProfile(t, db, "liker")
	post := &model.Post{UserID: user.ID, Content: "hello"}
	require.NoError(t, db.Create(post).Error)

	liked, count, err := repo.ToggleLike(ctx, post.ID, "liker")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	exists, err := repo.CheckLikeExists(ctx, post.ID, "liker")
	require.NoError(t, err)
	assert.True(t, exists)

	liked, count, err = repo.ToggleLike(ctx, post.ID, "liker")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)

	rows, err := repo.GetLikeCountByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)

	_, _, err = repo.ToggleLike(ctx, 4242, "liker")
	assert.ErrorIs(t, err, ErrPostMissing)
}

func TestPostRepoDeleteAndDrift(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepo(db)
	actionRepo := NewPostActionRepo(db)
	ctx := context.Background()

	user, _ := seedUserWithProfile(t, db, "author")
	p1 := &model.Post{UserID: user.ID, Content: "one"}
	p2 := &model.Post{UserID: user.ID, Content: "two"}
	require.NoError(t, postRepo.CreatePost(ctx, p1))
	require.NoError(t, postRepo.CreatePost(ctx, p2))

	_, _, err := actionRepo.ToggleLike(ctx, p1.ID, "author")
	require.NoError(t, err)
	require.NoError(t, actionRepo.CreateComment(ctx, &model.Comment{PostID: p1.ID, UserID: user.ID, Content: "nice"}))

	// 人为制造计数漂移
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", p2.ID).Update("likes_count", 5).Error)

	drifts, err := postRepo.GetLikeCountDrifts(ctx)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, p2.ID, drifts[0].ID)
	assert.Equal(t, int64(5), drifts[0].LikesCount)
	assert.Zero(t, drifts[0].Actual)

	res, err := postRepo.RecountLikes(ctx, p2.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, int64(5), res.LikesCount)
	assert.Zero(t, res.Actual)
	res, err = postRepo.RecountLikes(ctx, p2.ID)
	require.NoError(t, err)
	assert.Zero(t, res.LikesCount)
	res, err = postRepo.RecountLikes(ctx, 4242)
	require.NoError(t, err)
	assert.Nil(t, res)

	posts, err := postRepo.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p1.ID, posts[0].ID)
	assert.Equal(t, "author", posts[0].User.Username)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "author", posts[0].Comments[0].User.Username)

	require.NoError(t, postRepo.DeletePost(ctx, p1.ID))
	got, err := postRepo.GetPostByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	rows, err := actionRepo.GetLikeCountByPostID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
	comments, err := actionRepo.GetCommentsByPostID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
