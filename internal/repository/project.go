package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/pkg/geo"
)

// GetProjectFence 取项目的地理围栏配置。
// 项目没配围栏或项目不存在都返回 nil，缺数据不做围栏判定。
func GetProjectFence(db *gorm.DB, projectID int64) (*geo.Fence, error) {
	var project model.Project
	if err := db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	return project.Geofence(), nil
}
