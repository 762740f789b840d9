package repository

import (
	"time"

	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/pkg/snowflake"
)

// 仓储层都以 *gorm.DB 为第一参数，传事务句柄即可参与同一事务。

// FindOpenEntries 返回用户所有未关闭的记录，按开始时间降序（再按 id 降序）。
// 正常只会有零或一条；多于一条说明唯一索引之外出现过脏数据，
// 调用方取第一条以保证行为可复现，并把异常记日志。
func FindOpenEntries(db *gorm.DB, userID int64) ([]*model.TimeEntry, error) {
	var entries []*model.TimeEntry
	err := db.
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FindActiveEntry 返回用户当前打开的记录，没有则返回 (nil, nil)。
func FindActiveEntry(db *gorm.DB, userID int64) (*model.TimeEntry, error) {
	entries, err := FindOpenEntries(db, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

// CreateEntry 落一条新工时记录，ID 由 snowflake 生成。
func CreateEntry(db *gorm.DB, entry *model.TimeEntry) error {
	id, err := snowflake.NextID()
	if err != nil {
		return err
	}
	entry.ID = id

	return db.Create(entry).Error
}

// CloseEntry 关闭一条打开的记录。
// outsideGeofence 传 OR 合并后的最终值，避免覆盖另一端检测到的越界。
func CloseEntry(db *gorm.DB, entry *model.TimeEntry, endTime time.Time, endLat, endLng *float64, outsideGeofence, offlineCaptured bool) error {
	updates := map[string]interface{}{
		"end_time":         endTime,
		"end_latitude":     endLat,
		"end_longitude":    endLng,
		"outside_geofence": outsideGeofence,
		"offline_captured": offlineCaptured,
	}

	if err := db.Model(entry).Updates(updates).Error; err != nil {
		return err
	}

	entry.EndTime = &endTime
	entry.EndLatitude = endLat
	entry.EndLongitude = endLng
	entry.OutsideGeofence = outsideGeofence
	entry.OfflineCaptured = offlineCaptured
	return nil
}

// GetEntryForCompany 租户内按 id 取记录，跨租户一律当不存在处理。
func GetEntryForCompany(db *gorm.DB, entryID, companyID int64) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := db.
		Where("id = ? AND company_id = ?", entryID, companyID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// EntryListFilter 公司工时列表的过滤条件。
type EntryListFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	UserID   *int64
	Limit    int
}

// ListEntriesForCompany 报表用的公司工时列表，按开始时间降序。
func ListEntriesForCompany(db *gorm.DB, companyID int64, filter EntryListFilter) ([]*model.TimeEntry, error) {
	q := db.Where("company_id = ?", companyID)

	if filter.DateFrom != nil {
		q = q.Where("start_time >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("start_time <= ?", *filter.DateTo)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var entries []*model.TimeEntry
	if err := q.Order("start_time DESC, id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntryFields 应用管理员修正补丁（同事务内与审计条目一起提交）。
func UpdateEntryFields(db *gorm.DB, entry *model.TimeEntry, updates map[string]interface{}) error {
	return db.Model(entry).Updates(updates).Error
}

// DeleteEntry 软删除一条记录（审计条目留存删除标记）。
func DeleteEntry(db *gorm.DB, entry *model.TimeEntry) error {
	return db.Delete(entry).Error
}
