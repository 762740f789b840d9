package errors

import "fmt"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized    = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID   = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
	InvalidRequest  = Definition{Code: "INVALID_REQUEST", Message: "Invalid request payload"}
)

// 考勤打卡模块错误。
var (
	// UnknownCode 扫描的二维码既不是任务码也不是场所码
	UnknownCode = Definition{Code: "UNKNOWN_CODE", Message: "Invalid or inactive QR code"}
	// TaskWithoutProject 任务缺少所属项目，属于数据完整性故障
	TaskWithoutProject = Definition{Code: "TASK_WITHOUT_PROJECT", Message: "Task has no owning project"}
	EntryNotFound      = Definition{Code: "ENTRY_NOT_FOUND", Message: "Time entry not found"}
	InvalidTimeRange   = Definition{Code: "INVALID_TIME_RANGE", Message: "End time must not be earlier than start time"}
	ScanInProgress     = Definition{Code: "SCAN_IN_PROGRESS", Message: "Another scan for this user is being processed"}
)

// 场所码管理错误。
var (
	LocationCodeNotFound = Definition{Code: "LOCATION_CODE_NOT_FOUND", Message: "Location code not found"}
	TaskNotFound         = Definition{Code: "TASK_NOT_FOUND", Message: "Task not found"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:         Unauthorized,
	InvalidUserID.Code:        InvalidUserID,
	TooManyRequests.Code:      TooManyRequests,
	InvalidRequest.Code:       InvalidRequest,
	UnknownCode.Code:          UnknownCode,
	TaskWithoutProject.Code:   TaskWithoutProject,
	EntryNotFound.Code:        EntryNotFound,
	InvalidTimeRange.Code:     InvalidTimeRange,
	ScanInProgress.Code:       ScanInProgress,
	LocationCodeNotFound.Code: LocationCodeNotFound,
	TaskNotFound.Code:         TaskNotFound,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// SkipMessageError 消费者明确跳过一条消息（ack 但不处理）。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return fmt.Sprintf("message skipped: %s", e.Reason)
}
