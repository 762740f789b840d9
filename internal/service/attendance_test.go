package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WorkTrail/internal/model"
	pkgerrors "WorkTrail/pkg/errors"
)

func taskTarget(taskID, projectID int64) model.ScanTarget {
	return model.ScanTarget{Kind: model.TargetTask, TaskID: taskID, ProjectID: projectID}
}

func locationTarget() model.ScanTarget {
	return model.ScanTarget{Kind: model.TargetLocation}
}

func openEntry(taskID *int64) *model.TimeEntry {
	entry := &model.TimeEntry{
		CompanyID: 1,
		UserID:    42,
		StartTime: time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		TaskID:    taskID,
	}
	entry.ID = 100
	return entry
}

func TestDecideTransition(t *testing.T) {
	taskA := int64(10)
	taskB := int64(11)

	tests := []struct {
		name     string
		target   model.ScanTarget
		active   *model.TimeEntry
		expected transition
	}{
		{
			name:     "task scan with no open entry clocks in",
			target:   taskTarget(taskA, 1),
			active:   nil,
			expected: transitionOpen,
		},
		{
			name:     "location scan with no open entry clocks in",
			target:   locationTarget(),
			active:   nil,
			expected: transitionOpen,
		},
		{
			name:     "same task rescan clocks out",
			target:   taskTarget(taskA, 1),
			active:   openEntry(&taskA),
			expected: transitionClose,
		},
		{
			name:     "different task switches jobs",
			target:   taskTarget(taskB, 1),
			active:   openEntry(&taskA),
			expected: transitionSwitch,
		},
		{
			name:     "location scan always closes an open entry",
			target:   locationTarget(),
			active:   openEntry(&taskA),
			expected: transitionClose,
		},
		{
			name:     "location scan closes a location-opened entry",
			target:   locationTarget(),
			active:   openEntry(nil),
			expected: transitionClose,
		},
		{
			name:     "task scan over location-opened entry switches",
			target:   taskTarget(taskA, 1),
			active:   openEntry(nil),
			expected: transitionSwitch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decideTransition(tt.target, tt.active))
		})
	}
}

func TestResolveEventTimeOnline(t *testing.T) {
	before := time.Now().UTC()
	got, offline, err := resolveEventTime(nil)
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.False(t, offline)
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestResolveEventTimeOffline(t *testing.T) {
	ts := "2026-03-14T07:45:00+01:00"
	got, offline, err := resolveEventTime(&ts)

	require.NoError(t, err)
	assert.True(t, offline)
	assert.Equal(t, time.Date(2026, 3, 14, 6, 45, 0, 0, time.UTC), got)
}

func TestResolveEventTimeEmptyString(t *testing.T) {
	ts := ""
	_, offline, err := resolveEventTime(&ts)

	// 空串按在线处理
	require.NoError(t, err)
	assert.False(t, offline)
}

func TestResolveEventTimeInvalid(t *testing.T) {
	ts := "not-a-timestamp"
	_, _, err := resolveEventTime(&ts)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.InvalidRequest)
}

func TestClampCloseTime(t *testing.T) {
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	// 正常收班
	end := start.Add(4 * time.Hour)
	assert.Equal(t, end, clampCloseTime(start, end))

	// 时钟回拨：收班时间早于上班时间，截断为上班时间
	skewed := start.Add(-10 * time.Minute)
	assert.Equal(t, start, clampCloseTime(start, skewed))

	// 相等不截断
	assert.Equal(t, start, clampCloseTime(start, start))
}

func TestNewTimeEntryData(t *testing.T) {
	taskID := int64(7)
	projectID := int64(3)
	lat := 48.8584
	lng := 2.2945
	end := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)

	entry := &model.TimeEntry{
		CompanyID:       1,
		UserID:          42,
		ProjectID:       &projectID,
		TaskID:          &taskID,
		StartTime:       time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		EndTime:         &end,
		StartLatitude:   &lat,
		StartLongitude:  &lng,
		OutsideGeofence: true,
		OfflineCaptured: true,
		WasEdited:       true,
	}
	entry.ID = 123456789012345678

	data := NewTimeEntryData(entry)

	// 雪花 ID 转字符串防止前端精度丢失
	assert.Equal(t, "123456789012345678", data.ID)
	assert.Equal(t, "42", data.UserID)
	require.NotNil(t, data.ProjectID)
	assert.Equal(t, "3", *data.ProjectID)
	require.NotNil(t, data.TaskID)
	assert.Equal(t, "7", *data.TaskID)
	assert.Equal(t, entry.StartTime, data.StartTime)
	assert.Equal(t, &end, data.EndTime)
	assert.True(t, data.OutsideGeofence)
	assert.True(t, data.OfflineCaptured)
	assert.True(t, data.WasEdited)
}

func TestNewTimeEntryDataLocationShift(t *testing.T) {
	entry := openEntry(nil)
	data := NewTimeEntryData(entry)

	assert.Nil(t, data.ProjectID)
	assert.Nil(t, data.TaskID)
	assert.Nil(t, data.EndTime)
}
