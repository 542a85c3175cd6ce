package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-riegopanel/client"
	"go-riegopanel/middleware"
	"go-riegopanel/utils"
)

// bearerToken 取出守卫中间件放进上下文的原始令牌
func bearerToken(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextToken)
}

// pathID 解析路径参数里的数字ID
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		utils.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}

// renderClientError 把上游哨兵错误映射为统一响应
func renderClientError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		utils.Unauthorized(ctx, "session rejected by backend")
	case errors.Is(err, client.ErrForbidden):
		utils.Unauthorized(ctx, "operation not permitted")
	case errors.Is(err, client.ErrNotFound):
		utils.NotFound(ctx, "resource not found")
	default:
		utils.BadGateway(ctx, "backend unavailable")
	}
}
