package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLikeInvariant(t *testing.T, env *testEnv, postID uint64) int {
	t.Helper()
	var post model.Post
	require.NoError(t, env.db.First(&post, postID).Error)
	var rows int64
	require.NoError(t, env.db.Model(&model.LikePost{}).Where("post_id = ?", postID).Count(&rows).Error)
	assert.EqualValues(t, rows, post.LikesCount)
	return post.LikesCount
}

func TestPostActionService_ToggleLike(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostActionService(env.actionRepo, env.postRepo)
	ctx := context.Background()

	author, _ := env.seedUser(t, "author")
	post := env.seedPost(t, author.ID, "hello")

	liked, count, err := svc.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
	exists, err := svc.IsLiked(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.True(t, exists)
	assertLikeInvariant(t, env, post.ID)

	liked, count, err = svc.ToggleLike(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
	exists, err = svc.IsLiked(ctx, post.ID, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
	assertLikeInvariant(t, env, post.ID)

	_, _, err = svc.ToggleLike(ctx, 999, "bob")
	assert.ErrorIs(t, err, ErrPostNotFound)
	var rows int64
	require.NoError(t, env.db.Model(&model.LikePost{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestPostActionService_ToggleLikeConcurrent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostActionService(env.actionRepo, env.postRepo)
	ctx := context.Background()

	author, _ := env.seedUser(t, "author")
	post := env.seedPost(t, author.ID, "hello")

	// 8 个用户各点一次，另有 1 个用户连续切换 5 次
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := svc.ToggleLike(ctx, post.ID, fmt.Sprintf("user%d", i))
			errs <- err
		}(i)
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.ToggleLike(ctx, post.ID, "flipper")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count := assertLikeInvariant(t, env, post.ID)
	assert.Equal(t, 9, count)
}

func TestPostActionService_IdempotencyKey(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostActionService(env.actionRepo, env.postRepo)
	ctx := context.Background()

	author, _ := env.seedUser(t, "author")
	post := env.seedPost(t, author.ID, "hello")

	first, err := svc.ToggleLikeOnce(ctx, post.ID, "bob", "req-1")
	require.NoError(t, err)
	replay, err := svc.ToggleLikeOnce(ctx, post.ID, "bob", "req-1")
	require.NoError(t, err)
	assert.Equal(t, first, replay)
	assert.Equal(t, &dto.LikeResultDTO{PostID: post.ID, Liked: true, LikesCount: 1}, replay)

	next, err := svc.ToggleLikeOnce(ctx, post.ID, "bob", "req-2")
	require.NoError(t, err)
	assert.False(t, next.Liked)
	assertLikeInvariant(t, env, post.ID)

	_, err = svc.ToggleLikeOnce(ctx, post.ID, "", "req-3")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestPostActionService_Comments(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPostActionService(env.actionRepo, env.postRepo)
	ctx := context.Background()

	author, _ := env.seedUser(t, "author")
	other, _ := env.seedUser(t, "other")
	post := env.seedPost(t, author.ID, "hello")

	comment, err := svc.CreateComment(ctx, other.ID, post.ID, &dto.CreateCommentDTO{Content: "  nice  "})
	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Content)
	assert.Equal(t, "other", comment.Username)

	_, err = svc.CreateComment(ctx, other.ID, 999, &dto.CreateCommentDTO{Content: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, svc.DeleteComment(ctx, author.ID, comment.ID), UnauthorizedError)
	require.NoError(t, svc.DeleteComment(ctx, other.ID, comment.ID))

	comments, err := svc.GetComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
