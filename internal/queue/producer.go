package queue

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"WorkTrail/pkg/logger"
	"WorkTrail/storage/mq"
)

// PublishScanEvent 事务提交后发布扫码事件。
// 投递失败只记日志不回滚业务，活动流允许少量丢失，考勤数据不行。
func PublishScanEvent(companyID, userID, entryID int64, status string, occurredAt time.Time) {
	msg := ScanEventMessage{
		MessageID:   uuid.NewString(),
		CompanyID:   companyID,
		UserID:      userID,
		TimeEntryID: entryID,
		Status:      status,
		OccurredAt:  occurredAt,
	}

	if err := mq.PublishMessage(mq.AttendanceExchange, mq.ScanRoutingKey, msg); err != nil {
		logger.Logger.Warn("Failed to publish scan event",
			zap.Int64("company_id", companyID),
			zap.Int64("user_id", userID),
			zap.Int64("time_entry_id", entryID),
			zap.Error(err),
		)
	}
}
