package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"WorkTrail/internal/model"
	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/repository"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/logger"
	"WorkTrail/pkg/metrics"
	"WorkTrail/storage/database"
	"WorkTrail/utils"
)

// 修正子系统：管理员改动工时必须与审计条目同事务落库，
// 审计写不进去整个修正一起回滚，不存在没有审计痕迹的改动。

type CorrectionService struct{}

var (
	correctionService *CorrectionService
	correctionOnce    sync.Once
)

func Correction() *CorrectionService {
	correctionOnce.Do(func() {
		correctionService = &CorrectionService{}
	})
	return correctionService
}

// UpdateEntry 管理员修正一条工时记录的起止时间。
func (s *CorrectionService) UpdateEntry(
	ctx context.Context,
	companyID int64,
	editorID int64,
	entryID int64,
	req dto.UpdateEntryRequest,
) (*dto.TimeEntryData, error) {
	if req.StartTime == nil && req.EndTime == nil {
		return nil, pkgerrors.InvalidRequest
	}

	var newStart, newEnd *time.Time
	if req.StartTime != nil {
		t, err := utils.ParseEventTime(*req.StartTime)
		if err != nil {
			return nil, pkgerrors.InvalidRequest
		}
		newStart = &t
	}
	if req.EndTime != nil {
		t, err := utils.ParseEventTime(*req.EndTime)
		if err != nil {
			return nil, pkgerrors.InvalidRequest
		}
		newEnd = &t
	}

	var updated *model.TimeEntry

	err := database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := repository.GetEntryForCompany(tx, entryID, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.EntryNotFound
			}
			return fmt.Errorf("failed to query time entry: %w", err)
		}

		// 修正后的区间必须仍然合法
		effectiveStart := entry.StartTime
		if newStart != nil {
			effectiveStart = *newStart
		}
		effectiveEnd := entry.EndTime
		if newEnd != nil {
			effectiveEnd = newEnd
		}
		if effectiveEnd != nil && effectiveEnd.Before(effectiveStart) {
			return pkgerrors.InvalidTimeRange
		}

		patch := map[string]interface{}{"was_edited": true}
		if newStart != nil {
			patch["start_time"] = *newStart
		}
		if newEnd != nil {
			patch["end_time"] = *newEnd
		}

		// 审计先行：快照改动前的完整记录，审计落库失败整体回滚
		if err := s.writeAudit(tx, entry, editorID, model.AuditActionUpdate, patch, req.Reason); err != nil {
			return err
		}

		if err := repository.UpdateEntryFields(tx, entry, patch); err != nil {
			return fmt.Errorf("failed to update time entry: %w", err)
		}

		if newStart != nil {
			entry.StartTime = *newStart
		}
		if newEnd != nil {
			entry.EndTime = newEnd
		}
		entry.WasEdited = true
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCorrection(ctx, string(model.AuditActionUpdate))

	logger.Logger.Info("Time entry corrected",
		zap.Int64("company_id", companyID),
		zap.Int64("editor_id", editorID),
		zap.Int64("entry_id", entryID),
	)

	data := NewTimeEntryData(updated)
	return &data, nil
}

// RemoveEntry 管理员删除一条工时记录（软删除，审计条目留存删除前快照）。
func (s *CorrectionService) RemoveEntry(
	ctx context.Context,
	companyID int64,
	editorID int64,
	entryID int64,
	req dto.DeleteEntryRequest,
) error {
	err := database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := repository.GetEntryForCompany(tx, entryID, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.EntryNotFound
			}
			return fmt.Errorf("failed to query time entry: %w", err)
		}

		if err := s.writeAudit(tx, entry, editorID, model.AuditActionDelete, nil, req.Reason); err != nil {
			return err
		}

		if err := repository.DeleteEntry(tx, entry); err != nil {
			return fmt.Errorf("failed to delete time entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.RecordCorrection(ctx, string(model.AuditActionDelete))

	logger.Logger.Info("Time entry deleted",
		zap.Int64("company_id", companyID),
		zap.Int64("editor_id", editorID),
		zap.Int64("entry_id", entryID),
	)
	return nil
}

// writeAudit 同事务写审计条目。previous 存整条记录快照，patch 存本次补丁。
func (s *CorrectionService) writeAudit(
	tx *gorm.DB,
	entry *model.TimeEntry,
	editorID int64,
	action model.AuditAction,
	patch map[string]interface{},
	reason string,
) error {
	previous, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to snapshot time entry: %w", err)
	}

	var newData datatypes.JSON
	if patch != nil {
		b, err := json.Marshal(patch)
		if err != nil {
			return fmt.Errorf("failed to marshal correction patch: %w", err)
		}
		newData = b
	}

	if reason == "" {
		reason = model.DefaultAuditReason
	}

	audit := &model.TimeEntryAudit{
		CompanyID:    entry.CompanyID,
		TimeEntryID:  entry.ID,
		EditorID:     editorID,
		Action:       action,
		PreviousData: previous,
		NewData:      newData,
		Reason:       reason,
	}

	if err := repository.CreateAudit(tx, audit); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// GetAuditLogs 某条记录的审计历史，新的在前。
func (s *CorrectionService) GetAuditLogs(
	ctx context.Context,
	companyID int64,
	entryID int64,
) ([]dto.AuditEntryData, error) {
	db := database.DB().WithContext(ctx)

	// 软删除的记录审计历史仍可查（删除本身就有审计条目）
	if _, err := repository.GetEntryForCompany(db.Unscoped(), entryID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.EntryNotFound
		}
		return nil, fmt.Errorf("failed to query time entry: %w", err)
	}

	audits, err := repository.ListAuditsForEntry(db, entryID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	result := make([]dto.AuditEntryData, 0, len(audits))
	for _, audit := range audits {
		data := dto.AuditEntryData{
			ID:          strconv.FormatInt(audit.ID, 10),
			EditorID:    strconv.FormatInt(audit.EditorID, 10),
			TimeEntryID: strconv.FormatInt(audit.TimeEntryID, 10),
			Action:      string(audit.Action),
			Reason:      audit.Reason,
			CreatedAt:   audit.CreatedAt,
		}

		if len(audit.PreviousData) > 0 {
			if err := json.Unmarshal(audit.PreviousData, &data.PreviousData); err != nil {
				logger.Logger.Warn("Failed to decode audit snapshot",
					zap.Int64("audit_id", audit.ID),
					zap.Error(err),
				)
			}
		}
		if len(audit.NewData) > 0 {
			if err := json.Unmarshal(audit.NewData, &data.NewData); err != nil {
				logger.Logger.Warn("Failed to decode audit patch",
					zap.Int64("audit_id", audit.ID),
					zap.Error(err),
				)
			}
		}

		result = append(result, data)
	}
	return result, nil
}
