package client

import (
	"context"
	"fmt"
	"net/url"

	"go-riegopanel/models"
)

// ListTasks 获取任务列表，status 为空时不过滤
func (c *Client) ListTasks(ctx context.Context, token string, farmID int, status string) ([]models.Task, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	path := fmt.Sprintf("/api/farms/%d/tasks", farmID)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []models.Task
	err := c.get(ctx, path, token, &out)
	return out, err
}

// CreateTask 创建任务
func (c *Client) CreateTask(ctx context.Context, token string, task models.Task) (models.Task, error) {
	var out models.Task
	err := c.post(ctx, fmt.Sprintf("/api/farms/%d/tasks", task.FarmID), token, task, &out)
	return out, err
}

// UpdateTask 更新任务
func (c *Client) UpdateTask(ctx context.Context, token string, task models.Task) (models.Task, error) {
	var out models.Task
	err := c.put(ctx, fmt.Sprintf("/api/farms/%d/tasks/%d", task.FarmID, task.ID), token, task, &out)
	return out, err
}

// CompleteTask 标记任务完成
func (c *Client) CompleteTask(ctx context.Context, token string, farmID, taskID int) (models.Task, error) {
	var out models.Task
	err := c.post(ctx, fmt.Sprintf("/api/farms/%d/tasks/%d/complete", farmID, taskID), token, nil, &out)
	return out, err
}

// DeleteTask 删除任务
func (c *Client) DeleteTask(ctx context.Context, token string, farmID, taskID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/farms/%d/tasks/%d", farmID, taskID), token)
}
