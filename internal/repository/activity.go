package repository

import (
	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/pkg/snowflake"
)

// CreateActivityEvent 活动流落库（worker 消费扫码事件时调用）。
func CreateActivityEvent(db *gorm.DB, event *model.ActivityEvent) error {
	id, err := snowflake.NextID()
	if err != nil {
		return err
	}
	event.ID = id

	return db.Create(event).Error
}

// ListActivityForCompany 公司活动流，新的在前。
func ListActivityForCompany(db *gorm.DB, companyID int64, limit int) ([]*model.ActivityEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var events []*model.ActivityEvent
	err := db.
		Where("company_id = ?", companyID).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
