package model

import (
	"time"

	"WorkTrail/pkg/geo"
)

// TimeEntry 一段连续的工时记录。
// EndTime 为空表示记录仍然打开；每个用户同一时刻至多一条打开记录，
// 由 time_entries 上的部分唯一索引保证（见 storage/database/migrate.go）。
type TimeEntry struct {
	BaseModel
	CompanyID int64  `gorm:"not null;index:idx_time_entries_company_start" json:"company_id"`
	UserID    int64  `gorm:"not null;index:idx_time_entries_user_open" json:"user_id"`
	ProjectID *int64 `gorm:"index" json:"project_id,omitempty"`
	TaskID    *int64 `gorm:"index" json:"task_id,omitempty"`

	StartTime time.Time  `gorm:"type:timestamptz;not null;index:idx_time_entries_company_start" json:"start_time"`
	EndTime   *time.Time `gorm:"type:timestamptz;index:idx_time_entries_user_open" json:"end_time,omitempty"`

	StartLatitude  *float64 `json:"start_latitude,omitempty"`
	StartLongitude *float64 `json:"start_longitude,omitempty"`
	EndLatitude    *float64 `json:"end_latitude,omitempty"`
	EndLongitude   *float64 `json:"end_longitude,omitempty"`

	// OutsideGeofence 粘性标记：开班或收班任何一端越界，整条记录保持 true
	OutsideGeofence bool `gorm:"not null;default:false" json:"outside_geofence"`
	// OfflineCaptured 客户端离线采集（事件时间由客户端提供）
	OfflineCaptured bool `gorm:"not null;default:false" json:"offline_captured"`
	// WasEdited 被管理员手工修正过
	WasEdited bool `gorm:"not null;default:false" json:"was_edited"`
}

// TableName 指定表名
func (TimeEntry) TableName() string {
	return "time_entries"
}

// IsOpen 记录是否仍未关闭。
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// IsTaskScoped 是否挂在具体任务上（false 表示场所码打开的通用班次）。
func (e *TimeEntry) IsTaskScoped() bool {
	return e.TaskID != nil
}

// StartPoint 开班坐标，未采集返回 nil。
func (e *TimeEntry) StartPoint() *geo.Coordinate {
	if e.StartLatitude == nil || e.StartLongitude == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *e.StartLatitude, Longitude: *e.StartLongitude}
}

// EndPoint 收班坐标，未采集返回 nil。
func (e *TimeEntry) EndPoint() *geo.Coordinate {
	if e.EndLatitude == nil || e.EndLongitude == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *e.EndLatitude, Longitude: *e.EndLongitude}
}
