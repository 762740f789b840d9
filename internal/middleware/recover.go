package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"WorkTrail/config"
	"WorkTrail/pkg/errors"
	"WorkTrail/pkg/logger"
	"WorkTrail/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记日志并返回 500。
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
		zap.ByteString("stack", debug.Stack()),
	}

	if requestID := string(c.GetHeader("X-Request-Id")); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID, exists := GetUserID(ctx, c); exists {
		fields = append(fields, zap.Int64("user_id", userID))
	}

	logger.Logger.Error("[PANIC RECOVERED]", fields...)

	errDef := errors.Definition{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "Internal server error",
	}
	if !config.Cfg.IsProduction() {
		// 开发环境把 panic 内容带回响应方便排查
		errDef.Message = fmt.Sprintf("Internal error: %v", err)
	}

	response.Error(ctx, c, errDef)
}
