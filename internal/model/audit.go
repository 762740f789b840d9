package model

import "gorm.io/datatypes"

// AuditAction 审计动作类型
type AuditAction string

const (
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// DefaultAuditReason 调用方未填原因时的兜底文案
const DefaultAuditReason = "manual correction"

// TimeEntryAudit 工时记录人工变更的审计条目，只增不改不删。
// PreviousData 存变更前记录的完整快照；NewData 存本次补丁，
// 删除时为空，Action=delete 即删除标记。
type TimeEntryAudit struct {
	BaseModel
	CompanyID    int64          `gorm:"not null;index" json:"company_id"`
	TimeEntryID  int64          `gorm:"not null;index:idx_time_entry_audits_entry" json:"time_entry_id"`
	EditorID     int64          `gorm:"not null" json:"editor_id"`
	Action       AuditAction    `gorm:"type:varchar(16);not null" json:"action"`
	PreviousData datatypes.JSON `gorm:"type:jsonb;not null" json:"previous_data"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data,omitempty"`
	Reason       string         `gorm:"type:varchar(255);not null" json:"reason"`
}

// TableName 指定表名
func (TimeEntryAudit) TableName() string {
	return "time_entry_audits"
}
