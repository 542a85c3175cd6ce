package client

import "context"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult 登录成功后上游返回的令牌
type LoginResult struct {
	Token string `json:"token"`
}

// Login 用凭证换取 Bearer 令牌
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	err := c.post(ctx, "/api/auth/login", "", loginRequest{Username: username, Password: password}, &out)
	return out, err
}
