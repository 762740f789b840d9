package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"WorkTrail/internal/middleware"
	pkgerrors "WorkTrail/pkg/errors"
	"WorkTrail/pkg/response"
)

// identity 从 token 取租户和用户，缺任何一个都按未认证处理。
func identity(ctx context.Context, c *app.RequestContext) (companyID, userID int64, ok bool) {
	userID, ok = middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return 0, 0, false
	}

	companyID, ok = middleware.GetCompanyID(ctx, c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return 0, 0, false
	}

	return companyID, userID, true
}

// pathID 解析路径里的数字 id 参数。
func pathID(ctx context.Context, c *app.RequestContext, name string) (int64, bool) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, c, pkgerrors.InvalidRequest)
		return 0, false
	}
	return id, true
}
