package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisArgs_Redacts(t *testing.T) {
	ctx := context.Background()

	auth := redis.NewStatusCmd(ctx, "auth", "secret")
	assert.Equal(t, "[PROTECTED]", redisArgs(auth))

	blacklist := redis.NewStatusCmd(ctx, "set", "token:blacklist:abc.def", "1")
	assert.Equal(t, "[set token:blacklist:*]", redisArgs(blacklist))
	assert.NotContains(t, redisArgs(blacklist), "abc.def")

	replay := redis.NewStringCmd(ctx, "get", "idem:like:1:alice:key")
	assert.Equal(t, "[get idem:like:*]", redisArgs(replay))

	plain := redis.NewStringCmd(ctx, "get", "profile:follower:count:1")
	assert.Equal(t, "[get profile:follower:count:1]", redisArgs(plain))
}

func TestIgnorableRedisErr(t *testing.T) {
	assert.True(t, ignorableRedisErr("get", redis.Nil))
	assert.False(t, ignorableRedisErr("get", assert.AnError))
}

func TestRemoteFilterHandler_OnlyTraced(t *testing.T) {
	var local, remote bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	logger := log.New(&ContextHandler{tee})

	logger.Info("startup")
	assert.Contains(t, local.String(), "startup")
	assert.Empty(t, remote.String())

	ctx := context.WithValue(context.Background(), TraceIDKey, "t-1")
	logger.InfoContext(ctx, "request")
	assert.Contains(t, remote.String(), `"trace_id":"t-1"`)
	assert.NotContains(t, remote.String(), "startup")
}
