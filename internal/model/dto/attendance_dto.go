package dto

import "time"

// LocationPayload 客户端上报的 GPS 坐标。
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ScanRequest 扫码请求体。
// Timestamp 由离线采集的设备补传事件时间（RFC3339），在线扫码不传。
type ScanRequest struct {
	Code      string           `json:"code"`
	Location  *LocationPayload `json:"location,omitempty"`
	Timestamp *string          `json:"timestamp,omitempty"`
}

// ScanStatus 扫码结果：本次动作是上班还是下班
type ScanStatus string

const (
	ScanStatusClockIn  ScanStatus = "clock_in"
	ScanStatusClockOut ScanStatus = "clock_out"
)

// TimeEntryData 工时记录的对外表示。
type TimeEntryData struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ProjectID *string `json:"project_id,omitempty"`
	TaskID    *string `json:"task_id,omitempty"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	StartLatitude  *float64 `json:"start_latitude,omitempty"`
	StartLongitude *float64 `json:"start_longitude,omitempty"`
	EndLatitude    *float64 `json:"end_latitude,omitempty"`
	EndLongitude   *float64 `json:"end_longitude,omitempty"`

	OutsideGeofence bool `json:"outside_geofence"`
	OfflineCaptured bool `json:"offline_captured"`
	WasEdited       bool `json:"was_edited"`
}

// ScanResponse 扫码响应。
type ScanResponse struct {
	Status ScanStatus    `json:"status"`
	Entry  TimeEntryData `json:"entry"`
}

// ListEntriesQuery 公司工时列表查询参数。
type ListEntriesQuery struct {
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	UserID   string `query:"user_id"`
	Limit    int    `query:"limit"`
}
