package dto

import "time"

// ActivityQuery 活动流查询参数。
type ActivityQuery struct {
	Limit int `query:"limit"`
}

// ActivityEventData 活动流条目的对外表示。
type ActivityEventData struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	TimeEntryID string    `json:"time_entry_id"`
	Kind        string    `json:"kind"`
	OccurredAt  time.Time `json:"occurred_at"`
}
