package repository

import (
	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/pkg/snowflake"
)

// CreateAudit 落一条审计条目。审计只增不改，失败必须让同事务的修正一起回滚。
func CreateAudit(db *gorm.DB, audit *model.TimeEntryAudit) error {
	id, err := snowflake.NextID()
	if err != nil {
		return err
	}
	audit.ID = id

	return db.Create(audit).Error
}

// ListAuditsForEntry 某条记录的全部审计条目，新的在前。
func ListAuditsForEntry(db *gorm.DB, entryID, companyID int64) ([]*model.TimeEntryAudit, error) {
	var audits []*model.TimeEntryAudit
	err := db.
		Where("time_entry_id = ? AND company_id = ?", entryID, companyID).
		Order("created_at DESC, id DESC").
		Find(&audits).Error
	if err != nil {
		return nil, err
	}
	return audits, nil
}
