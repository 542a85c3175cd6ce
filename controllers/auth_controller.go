package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"go-riegopanel/auth"
	"go-riegopanel/client"
	"go-riegopanel/middleware"
	"go-riegopanel/session"
	"go-riegopanel/utils"
)

// AuthController 处理登录、登出和当前会话查询
type AuthController struct {
	API        *client.Client
	CookieName string
}

// NewAuthController 创建一个新的AuthController实例
func NewAuthController(api *client.Client, cookieName string) *AuthController {
	return &AuthController{API: api, CookieName: cookieName}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录：向后端换取令牌，写入会话Cookie
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.API.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			utils.Unauthorized(ctx, "invalid username or password")
			return
		}
		renderClientError(ctx, err)
		return
	}

	sess, err := auth.DecodeSession(result.Token)
	if err != nil {
		utils.BadGateway(ctx, "backend returned an unreadable token")
		return
	}

	// Cookie 生存期与令牌过期时间对齐
	maxAge := int(sess.ExpiresAt - time.Now().Unix())
	if maxAge <= 0 {
		utils.Unauthorized(ctx, "backend returned an expired token")
		return
	}
	session.Set(ctx, c.CookieName, result.Token, maxAge)

	utils.Success(ctx, gin.H{
		"username":  sess.Subject,
		"role":      sess.Role,
		"expiresAt": sess.ExpiresAt,
	})
}

// Logout 用户登出：清除会话Cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	session.NewCookieSource(ctx, c.CookieName).Clear()
	utils.NoContent(ctx)
}

// Me 返回当前会话身份
func (c *AuthController) Me(ctx *gin.Context) {
	v, ok := ctx.Get(middleware.ContextSession)
	if !ok {
		utils.Unauthorized(ctx, "authentication required")
		return
	}
	utils.Success(ctx, v)
}
