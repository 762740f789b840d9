package queue

import "time"

// ScanEventMessage 引擎每次状态迁移后发布的考勤事件。
// MessageID 用于消费端幂等去重。
type ScanEventMessage struct {
	MessageID   string    `json:"message_id"`
	CompanyID   int64     `json:"company_id"`
	UserID      int64     `json:"user_id"`
	TimeEntryID int64     `json:"time_entry_id"`
	Status      string    `json:"status"` // clock_in / clock_out
	OccurredAt  time.Time `json:"occurred_at"`
}
