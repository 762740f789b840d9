package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"WorkTrail/config"
	"WorkTrail/internal/cache"
	"WorkTrail/internal/model"
	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/queue"
	"WorkTrail/internal/repository"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/geo"
	"WorkTrail/pkg/logger"
	"WorkTrail/pkg/metrics"
	"WorkTrail/storage/database"
	"WorkTrail/utils"
)

// 扫码引擎：一次扫码根据当前打开记录和码的类型推进状态机，
// 结果是 关闭 / 关闭并打开（换岗）/ 打开 三种之一。
// 并发控制三层：Redis 用户锁在进库前串行化重复提交，
// 事务保证关闭和打开原子提交，部分唯一索引是最终兜底。

type AttendanceService struct{}

var (
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = &AttendanceService{}
	})
	return attendanceService
}

// transition 本次扫码要做的状态迁移
type transition int

const (
	transitionOpen   transition = iota // 没有打开记录，新开一条
	transitionClose                    // 关闭当前记录
	transitionSwitch                   // 换岗：关闭当前记录并立即打开新任务
)

// decideTransition 纯规则：根据扫码目标和当前打开记录决定迁移。
//   - 没有打开记录：任务码和场所码都是上班
//   - 场所码：永远只关闭（场所码不携带任务语义）
//   - 同任务重扫：关闭（下班）
//   - 不同任务：换岗
func decideTransition(target model.ScanTarget, active *model.TimeEntry) transition {
	if active == nil {
		return transitionOpen
	}
	if !target.IsTask() {
		return transitionClose
	}
	if target.SameTask(active.TaskID) {
		return transitionClose
	}
	return transitionSwitch
}

// resolveEventTime 解析本次扫码的事件时间。
// 客户端补传 timestamp 表示离线采集，记录要带 offline 标记。
func resolveEventTime(timestamp *string) (time.Time, bool, error) {
	if timestamp == nil || *timestamp == "" {
		return time.Now().UTC(), false, nil
	}

	t, err := utils.ParseEventTime(*timestamp)
	if err != nil {
		return time.Time{}, false, pkgerrors.InvalidRequest
	}
	return t, true, nil
}

// clampCloseTime 离线补传的下班时间早于上班时间时截断为上班时间，
// 保证记录时长非负（设备时钟回拨常见于离线采集）。
func clampCloseTime(start, event time.Time) time.Time {
	if event.Before(start) {
		return start
	}
	return event
}

// HandleScan 处理一次扫码打卡。
func (s *AttendanceService) HandleScan(
	ctx context.Context,
	companyID int64,
	userID int64,
	req dto.ScanRequest,
) (*dto.ScanResponse, error) {
	began := time.Now()

	db := database.DB().WithContext(ctx)

	target, err := repository.ResolveCode(db, companyID, req.Code)
	if err != nil {
		return nil, err
	}

	eventTime, offline, err := resolveEventTime(req.Timestamp)
	if err != nil {
		return nil, err
	}

	var point *geo.Coordinate
	if req.Location != nil {
		point = &geo.Coordinate{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	// 同一用户并发扫码在这里串行化，拿不到锁说明上一次还在处理
	lockKey := cache.ScanLockKey(userID)
	lockTTL := time.Duration(config.Cfg.ScanLockTTLSeconds) * time.Second
	acquired, err := cache.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire scan lock: %w", err)
	}
	if !acquired {
		return nil, pkgerrors.ScanInProgress
	}
	defer func() {
		if err := cache.Unlock(ctx, lockKey); err != nil {
			logger.Logger.Warn("Failed to release scan lock",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
	}()

	var (
		status      dto.ScanStatus
		resultEntry *model.TimeEntry
		closedEntry *model.TimeEntry
		openedEntry *model.TimeEntry
	)

	err = db.Transaction(func(tx *gorm.DB) error {
		open, err := repository.FindOpenEntries(tx, userID)
		if err != nil {
			return fmt.Errorf("failed to query open entries: %w", err)
		}

		var active *model.TimeEntry
		if len(open) > 0 {
			active = open[0]
		}
		if len(open) > 1 {
			// 唯一索引之外的脏数据，取最新一条继续，剩下的留给人工处理
			logger.Logger.Warn("User has multiple open time entries",
				zap.Int64("user_id", userID),
				zap.Int("open_count", len(open)),
				zap.Int64("picked_entry_id", active.ID),
			)
		}

		switch decideTransition(target, active) {
		case transitionClose:
			if err := s.closeEntry(tx, active, eventTime, point, offline); err != nil {
				return err
			}
			status = dto.ScanStatusClockOut
			resultEntry = active
			closedEntry = active

		case transitionSwitch:
			if err := s.closeEntry(tx, active, eventTime, point, offline); err != nil {
				return err
			}
			closedEntry = active

			entry, err := s.openEntry(tx, companyID, userID, target, eventTime, point, offline)
			if err != nil {
				return err
			}
			status = dto.ScanStatusClockIn
			resultEntry = entry
			openedEntry = entry

		case transitionOpen:
			entry, err := s.openEntry(tx, companyID, userID, target, eventTime, point, offline)
			if err != nil {
				return err
			}
			status = dto.ScanStatusClockIn
			resultEntry = entry
			openedEntry = entry
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 事务提交成功后才发活动流事件，换岗一次发两条
	if closedEntry != nil {
		queue.PublishScanEvent(companyID, userID, closedEntry.ID, string(dto.ScanStatusClockOut), *closedEntry.EndTime)
	}
	if openedEntry != nil {
		queue.PublishScanEvent(companyID, userID, openedEntry.ID, string(dto.ScanStatusClockIn), openedEntry.StartTime)
	}

	metrics.RecordScan(ctx, string(status), string(target.Kind),
		resultEntry.OutsideGeofence, offline, time.Since(began).Seconds())

	logger.Logger.Info("Scan processed",
		zap.Int64("company_id", companyID),
		zap.Int64("user_id", userID),
		zap.String("status", string(status)),
		zap.String("target_kind", string(target.Kind)),
		zap.Int64("entry_id", resultEntry.ID),
		zap.Bool("outside_geofence", resultEntry.OutsideGeofence),
		zap.Bool("offline_captured", offline),
	)

	data := NewTimeEntryData(resultEntry)
	return &dto.ScanResponse{Status: status, Entry: data}, nil
}

// closeEntry 关闭一条打开记录：围栏标记 OR 合并、离线标记粘住、时间截断。
func (s *AttendanceService) closeEntry(
	tx *gorm.DB,
	entry *model.TimeEntry,
	eventTime time.Time,
	point *geo.Coordinate,
	offline bool,
) error {
	endTime := clampCloseTime(entry.StartTime, eventTime)

	var fence *geo.Fence
	if entry.ProjectID != nil {
		f, err := repository.GetProjectFence(tx, *entry.ProjectID)
		if err != nil {
			return err
		}
		fence = f
	}

	outside := entry.OutsideGeofence || geo.IsOutside(fence, point)
	offlineCaptured := entry.OfflineCaptured || offline

	var endLat, endLng *float64
	if point != nil {
		endLat = &point.Latitude
		endLng = &point.Longitude
	}

	if err := repository.CloseEntry(tx, entry, endTime, endLat, endLng, outside, offlineCaptured); err != nil {
		return fmt.Errorf("failed to close time entry: %w", err)
	}
	return nil
}

// openEntry 打开一条新记录。场所码打开的记录不挂任务和项目，
// 换岗打开的新记录围栏标记从零开始判，不继承上一条。
func (s *AttendanceService) openEntry(
	tx *gorm.DB,
	companyID int64,
	userID int64,
	target model.ScanTarget,
	eventTime time.Time,
	point *geo.Coordinate,
	offline bool,
) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{
		CompanyID:       companyID,
		UserID:          userID,
		StartTime:       eventTime,
		OfflineCaptured: offline,
	}

	if target.IsTask() {
		taskID := target.TaskID
		projectID := target.ProjectID
		entry.TaskID = &taskID
		entry.ProjectID = &projectID

		fence, err := repository.GetProjectFence(tx, projectID)
		if err != nil {
			return nil, err
		}
		entry.OutsideGeofence = geo.IsOutside(fence, point)
	}

	if point != nil {
		entry.StartLatitude = &point.Latitude
		entry.StartLongitude = &point.Longitude
	}

	if err := repository.CreateEntry(tx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return entry, nil
}

// GetActiveEntry 查询用户当前打开的记录，没有返回 (nil, nil)。
func (s *AttendanceService) GetActiveEntry(ctx context.Context, companyID, userID int64) (*dto.TimeEntryData, error) {
	db := database.DB().WithContext(ctx)

	entry, err := repository.FindActiveEntry(db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active entry: %w", err)
	}
	if entry == nil || entry.CompanyID != companyID {
		return nil, nil
	}

	data := NewTimeEntryData(entry)
	return &data, nil
}

// ListEntries 公司工时列表（报表用）。
func (s *AttendanceService) ListEntries(
	ctx context.Context,
	companyID int64,
	query dto.ListEntriesQuery,
) ([]dto.TimeEntryData, error) {
	filter := repository.EntryListFilter{Limit: query.Limit}

	from, err := utils.ParseDateBound(query.DateFrom, false)
	if err != nil {
		return nil, pkgerrors.InvalidRequest
	}
	filter.DateFrom = from

	to, err := utils.ParseDateBound(query.DateTo, true)
	if err != nil {
		return nil, pkgerrors.InvalidRequest
	}
	filter.DateTo = to

	if query.UserID != "" {
		uid, err := strconv.ParseInt(query.UserID, 10, 64)
		if err != nil {
			return nil, pkgerrors.InvalidUserID
		}
		filter.UserID = &uid
	}

	db := database.DB().WithContext(ctx)
	entries, err := repository.ListEntriesForCompany(db, companyID, filter)
	if err != nil {
		logger.Logger.Error("Failed to list time entries",
			zap.Int64("company_id", companyID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	result := make([]dto.TimeEntryData, 0, len(entries))
	for _, entry := range entries {
		result = append(result, NewTimeEntryData(entry))
	}
	return result, nil
}

// NewTimeEntryData 模型转对外表示，ID 一律转字符串避免前端精度丢失。
func NewTimeEntryData(entry *model.TimeEntry) dto.TimeEntryData {
	data := dto.TimeEntryData{
		ID:              strconv.FormatInt(entry.ID, 10),
		UserID:          strconv.FormatInt(entry.UserID, 10),
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
		StartLatitude:   entry.StartLatitude,
		StartLongitude:  entry.StartLongitude,
		EndLatitude:     entry.EndLatitude,
		EndLongitude:    entry.EndLongitude,
		OutsideGeofence: entry.OutsideGeofence,
		OfflineCaptured: entry.OfflineCaptured,
		WasEdited:       entry.WasEdited,
	}

	if entry.ProjectID != nil {
		pid := strconv.FormatInt(*entry.ProjectID, 10)
		data.ProjectID = &pid
	}
	if entry.TaskID != nil {
		tid := strconv.FormatInt(*entry.TaskID, 10)
		data.TaskID = &tid
	}
	return data
}
