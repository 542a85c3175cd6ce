package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// ListFarms 获取全部农场
func (c *Client) ListFarms(ctx context.Context, token string) ([]models.Farm, error) {
	var out []models.Farm
	err := c.get(ctx, "/api/farms", token, &out)
	return out, err
}

// GetFarm 获取单个农场详情
func (c *Client) GetFarm(ctx context.Context, token string, id int) (models.Farm, error) {
	var out models.Farm
	err := c.get(ctx, fmt.Sprintf("/api/farms/%d", id), token, &out)
	return out, err
}

// CreateFarm 创建农场
func (c *Client) CreateFarm(ctx context.Context, token string, farm models.Farm) (models.Farm, error) {
	var out models.Farm
	err := c.post(ctx, "/api/farms", token, farm, &out)
	return out, err
}

// UpdateFarm 更新农场
func (c *Client) UpdateFarm(ctx context.Context, token string, farm models.Farm) (models.Farm, error) {
	var out models.Farm
	err := c.put(ctx, fmt.Sprintf("/api/farms/%d", farm.ID), token, farm, &out)
	return out, err
}

// DeleteFarm 删除农场
func (c *Client) DeleteFarm(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/farms/%d", id), token)
}

// ListSectors 获取某农场下的全部分区
func (c *Client) ListSectors(ctx context.Context, token string, farmID int) ([]models.Sector, error) {
	var out []models.Sector
	err := c.get(ctx, fmt.Sprintf("/api/farms/%d/sectors", farmID), token, &out)
	return out, err
}

// CreateSector 在某农场下创建分区
func (c *Client) CreateSector(ctx context.Context, token string, sector models.Sector) (models.Sector, error) {
	var out models.Sector
	err := c.post(ctx, fmt.Sprintf("/api/farms/%d/sectors", sector.FarmID), token, sector, &out)
	return out, err
}

// UpdateSector 更新分区
func (c *Client) UpdateSector(ctx context.Context, token string, sector models.Sector) (models.Sector, error) {
	var out models.Sector
	err := c.put(ctx, fmt.Sprintf("/api/farms/%d/sectors/%d", sector.FarmID, sector.ID), token, sector, &out)
	return out, err
}

// DeleteSector 删除分区
func (c *Client) DeleteSector(ctx context.Context, token string, farmID, sectorID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/farms/%d/sectors/%d", farmID, sectorID), token)
}
