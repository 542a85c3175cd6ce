// Package session 提供绑定到单次请求的令牌存取能力。
package session

import (
	"github.com/gin-gonic/gin"

	"go-riegopanel/auth"
)

// CookieSource 从请求 Cookie 读取令牌的 TokenSource 实现
type CookieSource struct {
	ctx  *gin.Context
	name string
}

var _ auth.TokenSource = (*CookieSource)(nil)

// NewCookieSource 创建绑定到当前请求的令牌来源
func NewCookieSource(ctx *gin.Context, name string) *CookieSource {
	return &CookieSource{ctx: ctx, name: name}
}

// Token 读取持久化的令牌，不存在或为空时返回 false
func (s *CookieSource) Token() (string, bool) {
	v, err := s.ctx.Cookie(s.name)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Clear 清除持久化的令牌
func (s *CookieSource) Clear() {
	s.ctx.SetCookie(s.name, "", -1, "/", "", false, true)
}

// Set 登录成功后写入令牌，HttpOnly，有效期由调用方决定
func Set(ctx *gin.Context, name, token string, maxAge int) {
	ctx.SetCookie(name, token, maxAge, "/", "", false, true)
}
