package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// AuditPage 审计记录的分页响应
type AuditPage struct {
	Entries    []models.AuditEntry `json:"entries"`
	TotalCount int                 `json:"totalCount"`
}

// ListAudit 分页获取审计历史
func (c *Client) ListAudit(ctx context.Context, token string, page, pageSize int) (AuditPage, error) {
	var out AuditPage
	path := fmt.Sprintf("/api/audit?page=%d&pageSize=%d", page, pageSize)
	err := c.get(ctx, path, token, &out)
	return out, err
}
