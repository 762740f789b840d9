package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"WorkTrail/internal/handler"
	"WorkTrail/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// 工时记录路由
	entries := v1.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware())
	entries.Use(middleware.GeneralRateLimitMiddleware())
	{
		entries.POST("/scan", middleware.ScanRateLimitMiddleware(), handler.Scan)
		entries.GET("/active", handler.GetActiveEntry)
		entries.GET("", handler.ListEntries)

		// 修正和审计（管理员操作）
		entries.PATCH("/:entry_id", handler.UpdateEntry)
		entries.DELETE("/:entry_id", handler.DeleteEntry)
		entries.GET("/:entry_id/audit-logs", handler.GetAuditLogs)
	}

	// 任务码路由
	tasks := v1.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.POST("/:task_id/code", handler.MintTaskCode)
	}

	// 场所码路由
	locationCodes := v1.Group("/location-codes")
	locationCodes.Use(middleware.AuthMiddleware())
	{
		locationCodes.POST("", handler.CreateLocationCode)
		locationCodes.GET("", handler.ListLocationCodes)
		locationCodes.DELETE("/:code_id", handler.DeleteLocationCode)
	}

	// 活动流路由
	activity := v1.Group("/activity")
	activity.Use(middleware.AuthMiddleware())
	{
		activity.GET("", handler.GetActivityFeed)
	}
}
