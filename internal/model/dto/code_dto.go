package dto

import "time"

// CreateLocationCodeRequest 生成场所码请求。
type CreateLocationCodeRequest struct {
	Name string `json:"name"`
}

// LocationCodeData 场所码的对外表示。
type LocationCodeData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CodeValue string    `json:"code_value"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskCodeData 任务码的对外表示。
type TaskCodeData struct {
	TaskID    string `json:"task_id"`
	CodeValue string `json:"code_value"`
}
