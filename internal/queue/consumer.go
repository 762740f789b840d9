package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"WorkTrail/internal/cache"
	"WorkTrail/internal/model"
	"WorkTrail/internal/repository"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/logger"
	"WorkTrail/storage/database"
	"WorkTrail/storage/mq"
)

// StartActivityConsumer 消费扫码事件，物化公司活动流。
func StartActivityConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg ScanEventMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal scan event message: %w", err)
		}

		acquired, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，宁可重复也不阻塞
		} else if !acquired {
			return &pkgerrors.SkipMessageError{Reason: fmt.Sprintf("message %s already processed", msg.MessageID)}
		}

		event := &model.ActivityEvent{
			CompanyID:   msg.CompanyID,
			UserID:      msg.UserID,
			TimeEntryID: msg.TimeEntryID,
			Kind:        model.ActivityKind(msg.Status),
			OccurredAt:  msg.OccurredAt,
		}

		if err := repository.CreateActivityEvent(database.DB().WithContext(ctx), event); err != nil {
			if unmarkErr := cache.UnmarkMessageProcessing(ctx, msg.MessageID); unmarkErr != nil {
				logger.Logger.Warn("Failed to unmark message after error",
					zap.String("message_id", msg.MessageID),
					zap.Error(unmarkErr),
				)
			}
			return fmt.Errorf("failed to persist activity event: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.ActivityQueue,
		ConsumerTag:   "activity_feed_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// StartAllConsumers 启动全部消费者（目前只有活动流一个）。
func StartAllConsumers(ctx context.Context) {
	go func() {
		if err := StartActivityConsumer(ctx); err != nil {
			logger.Logger.Error("Activity consumer stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
}
