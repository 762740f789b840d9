package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	got, err := ParseEventTime("2026-03-14T08:30:00+02:00")
	require.NoError(t, err)

	// 统一转 UTC
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC), got)
}

func TestParseEventTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2026-03-14", "2026-03-14 08:30:00"} {
		_, err := ParseEventTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDateBound(t *testing.T) {
	from, err := ParseDateBound("2026-03-14", false)
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *from)

	to, err := ParseDateBound("2026-03-14", true)
	require.NoError(t, err)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999999999, time.UTC), *to)
}

func TestParseDateBoundRFC3339(t *testing.T) {
	got, err := ParseDateBound("2026-03-14T10:00:00Z", true)
	require.NoError(t, err)
	require.NotNil(t, got)

	// 带完整时间时不做 endOfDay 调整
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), *got)
}

func TestParseDateBoundEmpty(t *testing.T) {
	got, err := ParseDateBound("", true)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseDateBoundInvalid(t *testing.T) {
	_, err := ParseDateBound("14/03/2026", false)
	assert.Error(t, err)
}
