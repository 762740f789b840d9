package metrics

import (
	"context"
)

// 包级便捷入口，未初始化指标时静默跳过（worker 等场景可以不开指标）。

// RecordScan 记录一次扫码结果
func RecordScan(ctx context.Context, status, targetKind string, outsideGeofence, offlineCaptured bool, duration float64) {
	m := GetMetrics()
	if m != nil {
		m.RecordScan(ctx, status, targetKind, outsideGeofence, offlineCaptured, duration)
	}
}

// RecordCorrection 记录一次人工修正
func RecordCorrection(ctx context.Context, action string) {
	m := GetMetrics()
	if m != nil {
		m.RecordCorrection(ctx, action)
	}
}
