package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryIsOpen(t *testing.T) {
	entry := &TimeEntry{StartTime: time.Now()}
	assert.True(t, entry.IsOpen())

	end := time.Now()
	entry.EndTime = &end
	assert.False(t, entry.IsOpen())
}

func TestTimeEntryIsTaskScoped(t *testing.T) {
	entry := &TimeEntry{}
	assert.False(t, entry.IsTaskScoped())

	taskID := int64(5)
	entry.TaskID = &taskID
	assert.True(t, entry.IsTaskScoped())
}

func TestTimeEntryPoints(t *testing.T) {
	entry := &TimeEntry{}
	assert.Nil(t, entry.StartPoint())
	assert.Nil(t, entry.EndPoint())

	lat := 48.8584
	lng := 2.2945
	entry.StartLatitude = &lat

	// 只有一半坐标仍算未采集
	assert.Nil(t, entry.StartPoint())

	entry.StartLongitude = &lng
	point := entry.StartPoint()
	require.NotNil(t, point)
	assert.Equal(t, lat, point.Latitude)
	assert.Equal(t, lng, point.Longitude)
}

func TestProjectGeofence(t *testing.T) {
	project := &Project{}
	assert.Nil(t, project.Geofence())

	lat := 52.52
	lng := 13.405
	radius := 150

	project.GeoLatitude = &lat
	project.GeoLongitude = &lng
	assert.Nil(t, project.Geofence(), "radius missing")

	project.GeoRadiusMeters = &radius
	fence := project.Geofence()
	require.NotNil(t, fence)
	assert.Equal(t, lat, fence.Center.Latitude)
	assert.Equal(t, lng, fence.Center.Longitude)
	assert.Equal(t, 150.0, fence.RadiusMeters)
}

func TestScanTargetSameTask(t *testing.T) {
	target := ScanTarget{Kind: TargetTask, TaskID: 10, ProjectID: 1}

	taskID := int64(10)
	otherID := int64(11)

	assert.True(t, target.SameTask(&taskID))
	assert.False(t, target.SameTask(&otherID))
	assert.False(t, target.SameTask(nil))

	// 场所码目标永远不等于任何任务
	location := ScanTarget{Kind: TargetLocation}
	assert.False(t, location.SameTask(&taskID))
}
