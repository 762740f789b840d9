package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/pkg/logger"
)

// 「同一用户最多一条未关闭记录」由存储层兜底：
// 应用里的 locate-open 再 close/open 是 check-then-act，
// 并发重复提交只能靠这个部分唯一索引拦住。
const openEntryUniqueIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS uniq_time_entries_open_per_user
ON time_entries (user_id)
WHERE end_time IS NULL AND deleted_at IS NULL
`

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	// 迁移所有模型
	err := db.AutoMigrate(
		&model.Project{},
		&model.Task{},
		&model.TaskCode{},
		&model.LocationCode{},
		&model.TimeEntry{},
		&model.TimeEntryAudit{},
		&model.ActivityEvent{},
	)

	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	if err := db.Exec(openEntryUniqueIndex).Error; err != nil {
		logger.Logger.Error("Failed to create open-entry unique index", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
