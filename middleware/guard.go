package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-riegopanel/auth"
	"go-riegopanel/session"
	"go-riegopanel/utils"
)

// gin 上下文里存放会话信息的键
const (
	ContextSession = "session"
	ContextToken   = "accessToken"
)

// Guarded 在进入受保护路由前执行会话检查的中间件
//
// 检查不通过时，页面导航跳转登录页，XHR/JSON 请求返回 401。
// 通过时把解码后的会话和原始令牌放进 gin 上下文供控制器使用。
func Guarded(guard *auth.Guard, cookieName string, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		src := session.NewCookieSource(ctx, cookieName)

		decision := guard.Check(src, allowedRoles)
		if !decision.Allowed {
			if wantsJSON(ctx) {
				utils.Unauthorized(ctx, "authentication required")
			} else {
				ctx.Redirect(http.StatusFound, decision.RedirectTo)
			}
			ctx.Abort()
			return
		}

		token, _ := src.Token()
		ctx.Set(ContextSession, decision.Session)
		ctx.Set(ContextToken, token)
		ctx.Next()
	}
}

// wantsJSON 区分页面导航和数据请求
func wantsJSON(ctx *gin.Context) bool {
	if ctx.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := ctx.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
