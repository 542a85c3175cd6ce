package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// MonthlyViews 获取某农场某月的分区视图，是月度汇总的输入数据
func (c *Client) MonthlyViews(ctx context.Context, token string, farmID, year, month int) ([]models.MonthlySectorView, error) {
	var out []models.MonthlySectorView
	path := fmt.Sprintf("/api/farms/%d/irrigation/monthly?year=%d&month=%d", farmID, year, month)
	err := c.get(ctx, path, token, &out)
	return out, err
}

// MonthlyReport 获取后端生成的某农场月度报表
func (c *Client) MonthlyReport(ctx context.Context, token string, farmID, year, month int) (models.MonthlyReport, error) {
	var out models.MonthlyReport
	path := fmt.Sprintf("/api/farms/%d/reports/monthly?year=%d&month=%d", farmID, year, month)
	err := c.get(ctx, path, token, &out)
	return out, err
}
