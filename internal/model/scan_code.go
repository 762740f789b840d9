package model

// TaskCode 任务二维码，扫到即定位到任务及其项目。
type TaskCode struct {
	BaseModel
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	TaskID    int64  `gorm:"not null;uniqueIndex" json:"task_id"`
	CodeValue string `gorm:"type:varchar(64);not null;uniqueIndex" json:"code_value"`
}

// TableName 指定表名
func (TaskCode) TableName() string {
	return "qr_codes"
}

// LocationCode 场所码：租户级的通用锚点，不挂任务。
// 贴在大门口，扫一下即收班。
type LocationCode struct {
	BaseModel
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	CodeValue string `gorm:"type:varchar(64);not null;uniqueIndex" json:"code_value"`
}

// TableName 指定表名
func (LocationCode) TableName() string {
	return "location_qr_codes"
}
