package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseEventTime 解析客户端补传的事件时间（RFC3339）。
func ParseEventTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

// ParseDateBound 解析报表过滤的日期边界，支持 YYYY-MM-DD 或完整 RFC3339。
// endOfDay 为 true 时日期取当天 23:59:59.999999999。
func ParseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	t = t.UTC()
	return &t, nil
}
