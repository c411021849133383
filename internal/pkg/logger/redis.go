package logger

import (
	"Socials/internal/pkg/consts"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSlowThreshold = 100 * time.Millisecond

// 这些前缀下的 key 携带令牌签名或回放结果，只记录前缀
var redactedKeyPrefixes = []string{
	consts.TokenBlacklistKey,
	consts.LikeIdempotencyKey,
}

// RedisLoggerHook 记录失败或慢的 Redis 命令
type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis dial error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if err != nil && ignorableRedisErr(cmd.Name(), err) {
			return err
		}
		if err == nil && elapsed <= redisSlowThreshold {
			return nil
		}

		fields := []any{
			log.String("command", cmd.Name()),
			log.String("args", redisArgs(cmd)),
			log.Duration("latency", elapsed),
		}
		if err != nil {
			log.ErrorContext(ctx, "Redis error", append(fields, log.Any("err", err))...)
		} else {
			log.WarnContext(ctx, "Redis slow", fields...)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		if err == nil && elapsed < redisSlowThreshold {
			return nil
		}

		if err != nil {
			log.ErrorContext(ctx, "Redis pipeline error",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", elapsed),
				log.Any("err", err))
		} else {
			log.WarnContext(ctx, "Redis pipeline slow",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", elapsed))
		}
		return err
	}
}

// 未命中与客户端握手阶段的 setinfo 报错不算异常
func ignorableRedisErr(cmdName string, err error) bool {
	if errors.Is(err, redis.Nil) || err.Error() == "ERR no such key" {
		return true
	}
	return cmdName == "client" && strings.Contains(err.Error(), "setinfo")
}

// redisArgs 格式化命令参数，凭证与敏感 key 脱敏
func redisArgs(cmd redis.Cmder) string {
	switch cmd.Name() {
	case "auth", "hello":
		return "[PROTECTED]"
	}

	args := cmd.Args()
	if len(args) < 2 {
		return fmt.Sprint(args)
	}
	key, ok := args[1].(string)
	if !ok {
		return fmt.Sprint(args)
	}
	for _, prefix := range redactedKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return fmt.Sprintf("[%s %s*]", cmd.Name(), prefix)
		}
	}
	return fmt.Sprint(args)
}
