package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// ListEquipment 获取全部灌溉设备
func (c *Client) ListEquipment(ctx context.Context, token string) ([]models.Equipment, error) {
	var out []models.Equipment
	err := c.get(ctx, "/api/equipment", token, &out)
	return out, err
}

// CreateEquipment 登记新设备
func (c *Client) CreateEquipment(ctx context.Context, token string, eq models.Equipment) (models.Equipment, error) {
	var out models.Equipment
	err := c.post(ctx, "/api/equipment", token, eq, &out)
	return out, err
}

// UpdateEquipment 更新设备信息（含状态流转）
func (c *Client) UpdateEquipment(ctx context.Context, token string, eq models.Equipment) (models.Equipment, error) {
	var out models.Equipment
	err := c.put(ctx, fmt.Sprintf("/api/equipment/%d", eq.ID), token, eq, &out)
	return out, err
}

// DeleteEquipment 删除设备
func (c *Client) DeleteEquipment(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/equipment/%d", id), token)
}

// ListWaterSources 获取某农场的水源列表
func (c *Client) ListWaterSources(ctx context.Context, token string, farmID int) ([]models.WaterSource, error) {
	var out []models.WaterSource
	err := c.get(ctx, fmt.Sprintf("/api/farms/%d/water-sources", farmID), token, &out)
	return out, err
}

// CreateWaterSource 登记新水源
func (c *Client) CreateWaterSource(ctx context.Context, token string, ws models.WaterSource) (models.WaterSource, error) {
	var out models.WaterSource
	err := c.post(ctx, fmt.Sprintf("/api/farms/%d/water-sources", ws.FarmID), token, ws, &out)
	return out, err
}

// UpdateWaterSource 更新水源
func (c *Client) UpdateWaterSource(ctx context.Context, token string, ws models.WaterSource) (models.WaterSource, error) {
	var out models.WaterSource
	err := c.put(ctx, fmt.Sprintf("/api/farms/%d/water-sources/%d", ws.FarmID, ws.ID), token, ws, &out)
	return out, err
}

// DeleteWaterSource 删除水源
func (c *Client) DeleteWaterSource(ctx context.Context, token string, farmID, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/farms/%d/water-sources/%d", farmID, id), token)
}
