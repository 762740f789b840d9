package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	def := Get("UNKNOWN_CODE")
	assert.Equal(t, UnknownCode, def)

	// 未注册的码返回兜底文案，保留原始 code
	unknown := Get("SOMETHING_ELSE")
	assert.Equal(t, "SOMETHING_ELSE", unknown.Code)
	assert.Equal(t, "Unexpected error", unknown.Message)
}

func TestDefinitionError(t *testing.T) {
	assert.Equal(t, "Time entry not found", EntryNotFound.Error())
}

func TestSkipMessageError(t *testing.T) {
	err := &SkipMessageError{Reason: "duplicate delivery"}
	assert.Equal(t, "message skipped: duplicate delivery", err.Error())
}
