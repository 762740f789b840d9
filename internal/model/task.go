package model

// Task 项目下的任务。CRUD 由中台维护，本服务只读。
type Task struct {
	BaseModel
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	ProjectID int64  `gorm:"not null;index" json:"project_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}
