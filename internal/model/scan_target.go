package model

// TargetKind 扫码解析结果的类别
type TargetKind string

const (
	TargetTask     TargetKind = "task"
	TargetLocation TargetKind = "location"
)

// ScanTarget 扫码解析结果的带标签变体，引擎里做穷举分派，
// 避免靠空值判断任务码/场所码。
type ScanTarget struct {
	Kind TargetKind
	// TaskID / ProjectID 仅 Kind == TargetTask 时有效
	TaskID    int64
	ProjectID int64
}

// IsTask 是否任务码目标。
func (t ScanTarget) IsTask() bool {
	return t.Kind == TargetTask
}

// SameTask 与打开记录指向同一任务（用于同任务重扫判定）。
func (t ScanTarget) SameTask(taskID *int64) bool {
	return t.Kind == TargetTask && taskID != nil && *taskID == t.TaskID
}
