package cache

import (
	"context"
	"fmt"
	"time"

	"WorkTrail/storage/redis"
)

// SetNX 实现的分布式锁。
// 扫码入口按用户加锁，把同一用户的并发重复提交在进库前就串行化；
// 数据库的部分唯一索引仍是最终兜底。
const (
	lockPrefix = "lock"
)

// ScanLockKey 同一用户扫码互斥锁的 key。
func ScanLockKey(userID int64) string {
	return fmt.Sprintf("scan:user:%d", userID)
}

func TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	fullkey := redis.Key(lockPrefix, key)

	result, err := redis.Client().SetNX(ctx, fullkey, 1, ttl).Result()

	if err != nil {
		return false, err
	}

	return result, err
}

func Unlock(ctx context.Context, key string) error {
	fullkey := redis.Key(lockPrefix, key)

	return redis.Client().Del(ctx, fullkey).Err()
}
