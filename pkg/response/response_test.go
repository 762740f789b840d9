package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"WorkTrail/pkg/errors"
)

func TestErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{errors.TooManyRequests, http.StatusTooManyRequests},
		{errors.ScanInProgress, http.StatusTooManyRequests},
		{errors.InvalidRequest, http.StatusBadRequest},
		{errors.InvalidUserID, http.StatusBadRequest},
		{errors.InvalidTimeRange, http.StatusBadRequest},
		{errors.Unauthorized, http.StatusUnauthorized},
		{errors.UnknownCode, http.StatusNotFound},
		{errors.EntryNotFound, http.StatusNotFound},
		{errors.LocationCodeNotFound, http.StatusNotFound},
		{errors.TaskNotFound, http.StatusNotFound},
		// 数据完整性故障按服务端错误处理
		{errors.TaskWithoutProject, http.StatusInternalServerError},
		// 非业务错误一律 500
		{fmt.Errorf("database connection lost"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.err), func(t *testing.T) {
			assert.Equal(t, tt.expected, errorToHTTPStatus(tt.err))
		})
	}
}
