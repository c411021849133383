package redis

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockRetryInterval = 50 * time.Millisecond

var unlockScript = redis.NewScript("if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end")

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在时返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetJSON 序列化后写入并设置过期时间
func SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, data, expiration).Err()
}

// GetJSON 读取并反序列化，键不存在时返回 false
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := Rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err = json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// TryLock 尝试加锁，retryTimes 为 -1 时一直重试直到 ctx 结束
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		success, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
	return false, nil
}

// UnLock 释放锁，只删除自己持有的锁
func UnLock(ctx context.Context, key string, value interface{}) {
	unlockScript.Run(ctx, Rdb, []string{key}, value)
}

// Lock 阻塞加锁直到成功或 ctx 结束，返回释放函数
func Lock(ctx context.Context, key string, expiration time.Duration) (func(), error) {
	token := uuid.NewString()
	ok, err := TryLock(ctx, key, token, expiration, -1)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	if !ok {
		return nil, context.DeadlineExceeded
	}
	return func() {
		// 请求 ctx 可能已取消，释放锁使用独立的 ctx
		UnLock(context.Background(), key, token)
	}, nil
}

// SetIfUnchanged 在 WATCH guardKey 的前提下执行 load 并写入 key
// load 期间 guardKey 被修改则放弃写入，避免旧值覆盖失效后的缓存
func SetIfUnchanged(ctx context.Context, guardKey, key string, expiration time.Duration, load func() (interface{}, error)) error {
	err := Rdb.Watch(ctx, func(tx *redis.Tx) error {
		value, err := load()
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, expiration)
			return nil
		})
		return err
	}, guardKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// BumpAndDelete 递增 guardKeys 并删除 keys，正在回源的 SetIfUnchanged 将放弃写入
func BumpAndDelete(ctx context.Context, guardKeys []string, guardExpiration time.Duration, keys ...string) error {
	_, err := Rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, g := range guardKeys {
			pipe.Incr(ctx, g)
			pipe.Expire(ctx, g, guardExpiration)
		}
		if len(keys) > 0 {
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	return err
}
