package dto

import "time"

// UpdateEntryRequest 管理员修正工时请求，目前只允许改起止时间。
type UpdateEntryRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// DeleteEntryRequest 管理员删除工时请求。
type DeleteEntryRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AuditEntryData 审计条目的对外表示。
type AuditEntryData struct {
	ID           string         `json:"id"`
	EditorID     string         `json:"editor_id"`
	TimeEntryID  string         `json:"time_entry_id"`
	Action       string         `json:"action"`
	PreviousData map[string]any `json:"previous_data"`
	NewData      map[string]any `json:"new_data,omitempty"`
	Reason       string         `json:"reason"`
	CreatedAt    time.Time      `json:"created_at"`
}
