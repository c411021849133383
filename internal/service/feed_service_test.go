package service

import (
	"Socials/internal/pkg/consts"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_HomeFeed(t *testing.T) {
	env := newTestEnv(t)
	svc := env.feedService()
	ctx := context.Background()

	viewer, viewerProfile := env.seedUser(t, "viewer")
	for i := 0; i < 5; i++ {
		env.seedUser(t, fmt.Sprintf("user%d", i))
	}
	first := env.seedPost(t, viewer.ID, "first")
	second := env.seedPost(t, viewer.ID, "second")

	actions := NewPostActionService(env.actionRepo, env.postRepo)
	_, _, err := actions.ToggleLike(ctx, second.ID, viewer.Username)
	require.NoError(t, err)

	feed, err := svc.BuildHomeFeed(ctx, viewer.ID)
	require.NoError(t, err)

	assert.Equal(t, viewerProfile.ID, feed.Profile.ID)
	assert.EqualValues(t, 2, feed.CountPosts)
	require.Len(t, feed.Posts, 2)
	assert.Equal(t, first.ID, feed.Posts[0].ID)
	assert.Equal(t, "viewer", feed.Posts[0].Username)
	assert.False(t, feed.Posts[0].Liked)
	assert.True(t, feed.Posts[1].Liked)

	assert.Len(t, feed.Suggestions, 5)
	for _, p := range feed.Suggestions {
		assert.NotEqual(t, viewerProfile.ID, p.ID)
	}
}

func TestFeedService_HomeFeedCreatesProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.feedService()
	ctx := context.Background()

	_, err := svc.BuildHomeFeed(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	created := env.seedUserOnly(t, "fresh")
	feed, err := svc.BuildHomeFeed(ctx, created.ID)
	require.NoError(t, err)
	assert.NotZero(t, feed.Profile.ID)
	assert.Empty(t, feed.Suggestions)
}

func TestFeedService_ProfilePage(t *testing.T) {
	env := newTestEnv(t)
	svc := env.feedService()
	follows := env.followService()
	ctx := context.Background()

	viewer, viewerProfile := env.seedUser(t, "viewer")
	target, targetProfile := env.seedUser(t, "target")
	env.seedPost(t, target.ID, "mine")
	env.seedPost(t, viewer.ID, "not on target page")

	page, err := svc.BuildProfilePage(ctx, viewer.ID, targetProfile.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.FollowButtonText, page.ButtonText)
	assert.False(t, page.IsFollowing)
	assert.False(t, page.IsSelf)
	assert.EqualValues(t, 1, page.CountPosts)
	assert.EqualValues(t, 0, page.FollowerCount)

	_, err = follows.ToggleFollow(ctx, viewerProfile.ID, targetProfile.ID)
	require.NoError(t, err)

	page, err = svc.BuildProfilePage(ctx, viewer.ID, targetProfile.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.UnFollowButtonText, page.ButtonText)
	assert.True(t, page.IsFollowing)
	assert.EqualValues(t, 1, page.FollowerCount)
	assert.EqualValues(t, 0, page.FollowingCount)

	// 按钮状态只取决于访问者自己是否关注
	page, err = svc.BuildProfilePage(ctx, target.ID, viewerProfile.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.FollowButtonText, page.ButtonText)
	assert.EqualValues(t, 1, page.FollowingCount)

	_, err = svc.BuildProfilePage(ctx, viewer.ID, 999)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
