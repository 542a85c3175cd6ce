package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// ListUsers 获取全部用户（管理员功能）
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.get(ctx, "/api/users", token, &out)
	return out, err
}

// CreateUser 创建用户，password 只在创建请求里出现，响应不回传
func (c *Client) CreateUser(ctx context.Context, token string, user models.User, password string) (models.User, error) {
	payload := struct {
		models.User
		Password string `json:"password"`
	}{User: user, Password: password}

	var out models.User
	err := c.post(ctx, "/api/users", token, payload, &out)
	return out, err
}

// UpdateUser 更新用户资料或角色
func (c *Client) UpdateUser(ctx context.Context, token string, user models.User) (models.User, error) {
	var out models.User
	err := c.put(ctx, fmt.Sprintf("/api/users/%d", user.ID), token, user, &out)
	return out, err
}

// DeleteUser 停用用户
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id), token)
}
