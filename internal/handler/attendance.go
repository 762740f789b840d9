package handler

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/service"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/response"
)

// Scan 扫码打卡
// POST /v1/time-entries/scan
func Scan(ctx context.Context, c *app.RequestContext) {
	companyID, userID, ok := identity(ctx, c)
	if !ok {
		return
	}

	var req dto.ScanRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		response.Error(ctx, c, pkgerrors.InvalidRequest)
		return
	}

	result, err := service.Attendance().HandleScan(ctx, companyID, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetActiveEntry 当前打开的工时记录
// GET /v1/time-entries/active
func GetActiveEntry(ctx context.Context, c *app.RequestContext) {
	companyID, userID, ok := identity(ctx, c)
	if !ok {
		return
	}

	entry, err := service.Attendance().GetActiveEntry(ctx, companyID, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	// 没有打开记录返回 data: null，不是 404
	response.Success(ctx, c, entry)
}

// ListEntries 公司工时列表
// GET /v1/time-entries
func ListEntries(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	var query dto.ListEntriesQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	entries, err := service.Attendance().ListEntries(ctx, companyID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, entries, map[string]interface{}{
		"count": len(entries),
	})
}
