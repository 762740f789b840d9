package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/service"
	"WorkTrail/pkg/response"
)

// MintTaskCode 为任务生成扫码值（幂等）
// POST /v1/tasks/:task_id/code
func MintTaskCode(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	taskID, ok := pathID(ctx, c, "task_id")
	if !ok {
		return
	}

	code, err := service.Code().MintTaskCode(ctx, companyID, taskID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, code)
}

// CreateLocationCode 生成场所码
// POST /v1/location-codes
func CreateLocationCode(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateLocationCodeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	code, err := service.Code().CreateLocationCode(ctx, companyID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, code)
}

// ListLocationCodes 公司场所码列表
// GET /v1/location-codes
func ListLocationCodes(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	codes, err := service.Code().ListLocationCodes(ctx, companyID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, codes)
}

// DeleteLocationCode 删除场所码
// DELETE /v1/location-codes/:code_id
func DeleteLocationCode(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	codeID, ok := pathID(ctx, c, "code_id")
	if !ok {
		return
	}

	if err := service.Code().RemoveLocationCode(ctx, companyID, codeID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
