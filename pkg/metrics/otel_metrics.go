package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 考勤相关指标
	ScansTotal              metric.Int64Counter
	ScanDuration            metric.Float64Histogram
	GeofenceViolationsTotal metric.Int64Counter
	OfflineScansTotal       metric.Int64Counter
	CorrectionsTotal        metric.Int64Counter

	// HTTP 相关指标
	HTTPServerRequestTotal   metric.Int64Counter
	HTTPServerDuration       metric.Float64Histogram
	HTTPServerRequestSize    metric.Int64Histogram
	HTTPServerResponseSize   metric.Int64Histogram
	HTTPServerActiveRequests metric.Int64UpDownCounter
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("worktrail")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.ScansTotal, err = meter.Int64Counter(
		"attendance_scans_total",
		metric.WithDescription("Total number of processed QR scans"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return err
	}

	metrics.ScanDuration, err = meter.Float64Histogram(
		"attendance_scan_duration_seconds",
		metric.WithDescription("Time spent processing a scan in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.GeofenceViolationsTotal, err = meter.Int64Counter(
		"attendance_geofence_violations_total",
		metric.WithDescription("Total number of scans flagged outside the project geofence"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return err
	}

	metrics.OfflineScansTotal, err = meter.Int64Counter(
		"attendance_offline_scans_total",
		metric.WithDescription("Total number of scans captured offline and synced later"),
		metric.WithUnit("{scan}"),
	)
	if err != nil {
		return err
	}

	metrics.CorrectionsTotal, err = meter.Int64Counter(
		"attendance_corrections_total",
		metric.WithDescription("Total number of manual time entry corrections"),
		metric.WithUnit("{correction}"),
	)
	if err != nil {
		return err
	}

	// HTTP 相关指标
	metrics.HTTPServerRequestTotal, err = meter.Int64Counter(
		"http_server_request_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerDuration, err = meter.Float64Histogram(
		"http_server_duration_seconds",
		metric.WithDescription("HTTP request handling duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerRequestSize, err = meter.Int64Histogram(
		"http_server_request_size_bytes",
		metric.WithDescription("HTTP request body size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerResponseSize, err = meter.Int64Histogram(
		"http_server_response_size_bytes",
		metric.WithDescription("HTTP response body size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return err
	}

	metrics.HTTPServerActiveRequests, err = meter.Int64UpDownCounter(
		"http_server_active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordScan 记录一次扫码结果
func (m *OTelMetrics) RecordScan(ctx context.Context, status, targetKind string, outsideGeofence, offlineCaptured bool, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("status", status),
		attribute.String("target_kind", targetKind),
	}

	m.ScansTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.ScanDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

	if outsideGeofence {
		m.GeofenceViolationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	if offlineCaptured {
		m.OfflineScansTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordCorrection 记录一次人工修正
func (m *OTelMetrics) RecordCorrection(ctx context.Context, action string) {
	m.CorrectionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
	))
}
