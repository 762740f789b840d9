package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/service"
	"WorkTrail/pkg/response"
)

// GetActivityFeed 公司打卡活动流
// GET /v1/activity
func GetActivityFeed(ctx context.Context, c *app.RequestContext) {
	companyID, _, ok := identity(ctx, c)
	if !ok {
		return
	}

	var query dto.ActivityQuery
	if err := c.Bind(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	events, err := service.Activity().GetFeed(ctx, companyID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, events)
}
