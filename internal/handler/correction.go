package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/service"
	"WorkTrail/pkg/response"
)

// UpdateEntry 管理员修正工时
// PATCH /v1/time-entries/:entry_id
func UpdateEntry(ctx context.Context, c *app.RequestContext) {
	companyID, editorID, ok := identity(ctx, c)
	if !ok {
		return
	}

	entryID, ok := pathID(ctx, c, "entry_id")
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	entry, err := service.Correction().UpdateEntry(ctx, companyID, editorID, entryID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, entry)
}

// DeleteEntry 管理员删除工时
// DELETE /v1/time-entries/:entry_id
func DeleteEntry(ctx context.Context, c *app.RequestContext) {
	companyID, editorID, ok := identity(ctx, c)
	if !ok {
		return
	}

	entryID, ok := pathID(ctx, c, "entry_id")
	if !ok {
		return
	}

	var req dto.DeleteEntryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Correction().RemoveEntry(ctx, companyID, editorID, entryID, req); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GetAuditLogs 工时记录的审计历史
// GET /v1/time-entries/:entry_id/audit-logs
func GetAuditLogs(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	entryID, ok := pathID(ctx, c, "entry_id")
	if !ok {
		return
	}

	logs, err := service.Correction().GetAuditLogs(ctx, companyID, entryID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, logs)
}
