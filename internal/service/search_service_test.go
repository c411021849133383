package service

import (
	"Socials/internal/api/config"
	"Socials/internal/pkg/es"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserES struct {
	ids []uint64
	err error
}

func (s *stubUserES) IndexUser(context.Context, *es.UserES, int64) error { return nil }

func (s *stubUserES) DeleteUser(context.Context, uint64) error { return nil }

func (s *stubUserES) SearchUserIDs(context.Context, string) ([]uint64, error) { return s.ids, s.err }

func TestSearchService_Database(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSearchService(env.profileRepo, nil, env.storage)
	ctx := context.Background()

	_, first := env.seedUser(t, "Alice")
	env.seedUser(t, "bob")
	_, third := env.seedUser(t, "malice")

	res, err := svc.SearchProfiles(ctx, "   ")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	res, err = svc.SearchProfiles(ctx, "ALI")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, first.ID, res[0].ID)
	assert.Equal(t, third.ID, res[1].ID)
	assert.Equal(t, "Alice", res[0].Username)
}

func TestSearchService_ElasticWithFallback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, aliceProfile := env.seedUser(t, "alice")
	bob, bobProfile := env.seedUser(t, "bob")

	prev := config.Cfg.Search.Backend
	config.Cfg.Search.Backend = config.SearchBackendElastic
	t.Cleanup(func() { config.Cfg.Search.Backend = prev })

	svc := NewSearchService(env.profileRepo, &stubUserES{ids: []uint64{bob.ID, alice.ID}}, env.storage)
	res, err := svc.SearchProfiles(ctx, "anything")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, aliceProfile.ID, res[0].ID)
	assert.Equal(t, bobProfile.ID, res[1].ID)

	svc = NewSearchService(env.profileRepo, &stubUserES{err: errors.New("es down")}, env.storage)
	res, err = svc.SearchProfiles(ctx, "bo")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, bobProfile.ID, res[0].ID)
}
