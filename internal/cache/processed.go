package cache

import (
	"context"
	"time"

	"WorkTrail/storage/redis"
)

// 消费者幂等标记：MQ 至少一次投递，重投的消息靠这里跳过。
const (
	messageProcessedPrefix = "message:processed"

	processedTTL = 48 * time.Hour
)

// TryMarkMessageProcessing 原子地检查并标记消息正在处理。
// 返回 true 表示本次抢到了处理权，false 表示已有消费者处理过（或正在处理）。
func TryMarkMessageProcessing(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	key := redis.Key(messageProcessedPrefix, messageID)
	return redis.Client().SetNX(ctx, key, 1, ttl).Result()
}

// MarkMessageProcessed 处理完成后延长标记 TTL。
func MarkMessageProcessed(ctx context.Context, messageID string) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	return redis.Client().Expire(ctx, key, processedTTL).Err()
}

// UnmarkMessageProcessing 处理失败时清除标记，允许重投后重试。
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key(messageProcessedPrefix, messageID)
	return redis.Client().Del(ctx, key).Err()
}
