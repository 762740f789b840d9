package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"WorkTrail/internal/model"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/snowflake"
)

// ResolveCode 把扫描到的字符串解析成带标签的目标。
// 先查任务码，再查场所码，都查不到按无效码处理（用户侧 404，不是服务故障）。
func ResolveCode(db *gorm.DB, companyID int64, code string) (model.ScanTarget, error) {
	var taskCode model.TaskCode
	err := db.
		Where("code_value = ? AND company_id = ?", code, companyID).
		First(&taskCode).Error
	if err == nil {
		return resolveTaskTarget(db, taskCode.TaskID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ScanTarget{}, fmt.Errorf("failed to query task code: %w", err)
	}

	var locCode model.LocationCode
	err = db.
		Where("code_value = ? AND company_id = ?", code, companyID).
		First(&locCode).Error
	if err == nil {
		return model.ScanTarget{Kind: model.TargetLocation}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ScanTarget{}, fmt.Errorf("failed to query location code: %w", err)
	}

	return model.ScanTarget{}, pkgerrors.UnknownCode
}

func resolveTaskTarget(db *gorm.DB, taskID int64) (model.ScanTarget, error) {
	var task model.Task
	if err := db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 码还在但任务没了，当无效码处理
			return model.ScanTarget{}, pkgerrors.UnknownCode
		}
		return model.ScanTarget{}, fmt.Errorf("failed to query task: %w", err)
	}

	if task.ProjectID == 0 {
		// 任务必须挂项目，缺失属于数据完整性故障
		return model.ScanTarget{}, pkgerrors.TaskWithoutProject
	}

	return model.ScanTarget{
		Kind:      model.TargetTask,
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
	}, nil
}

// GetOrCreateTaskCode 幂等地为任务生成扫码值（已有则直接返回）。
func GetOrCreateTaskCode(db *gorm.DB, companyID, taskID int64) (*model.TaskCode, error) {
	var task model.Task
	err := db.Where("id = ? AND company_id = ?", taskID, companyID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.TaskNotFound
		}
		return nil, fmt.Errorf("failed to query task: %w", err)
	}

	var existing model.TaskCode
	err = db.Where("task_id = ?", taskID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query task code: %w", err)
	}

	id, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	code := &model.TaskCode{
		CompanyID: companyID,
		TaskID:    taskID,
		CodeValue: uuid.NewString(),
	}
	code.ID = id

	if err := db.Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

// CreateLocationCode 生成租户级场所码。
func CreateLocationCode(db *gorm.DB, companyID int64, name string) (*model.LocationCode, error) {
	id, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	code := &model.LocationCode{
		CompanyID: companyID,
		Name:      name,
		CodeValue: uuid.NewString(),
	}
	code.ID = id

	if err := db.Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

// ListLocationCodes 列出公司全部场所码。
func ListLocationCodes(db *gorm.DB, companyID int64) ([]*model.LocationCode, error) {
	var codes []*model.LocationCode
	err := db.
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// DeleteLocationCode 删除场所码，跨租户或不存在返回 LocationCodeNotFound。
func DeleteLocationCode(db *gorm.DB, companyID, codeID int64) error {
	res := db.
		Where("id = ? AND company_id = ?", codeID, companyID).
		Delete(&model.LocationCode{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.LocationCodeNotFound
	}
	return nil
}
