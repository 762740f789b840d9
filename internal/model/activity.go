package model

import "time"

// ActivityKind 活动流事件类别
type ActivityKind string

const (
	ActivityClockIn  ActivityKind = "clock_in"
	ActivityClockOut ActivityKind = "clock_out"
)

// ActivityEvent 公司活动流条目，由 worker 消费扫码事件落库。
type ActivityEvent struct {
	BaseModel
	CompanyID   int64        `gorm:"not null;index:idx_activity_events_company_time" json:"company_id"`
	UserID      int64        `gorm:"not null" json:"user_id"`
	TimeEntryID int64        `gorm:"not null" json:"time_entry_id"`
	Kind        ActivityKind `gorm:"type:varchar(16);not null" json:"kind"`
	OccurredAt  time.Time    `gorm:"type:timestamptz;not null;index:idx_activity_events_company_time" json:"occurred_at"`
}

// TableName 指定表名
func (ActivityEvent) TableName() string {
	return "activity_events"
}
