package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"go-riegopanel/cache"
	"go-riegopanel/client"
	"go-riegopanel/models"
	"go-riegopanel/utils"
)

// FarmController 处理农场和分区相关的请求
type FarmController struct {
	API   *client.Client
	Cache *cache.Group
}

// NewFarmController 创建一个新的FarmController实例
func NewFarmController(api *client.Client, group *cache.Group) *FarmController {
	return &FarmController{API: api, Cache: group}
}

// ListFarms 获取农场列表
func (c *FarmController) ListFarms(ctx *gin.Context) {
	token := bearerToken(ctx)
	v, err := c.Cache.Do("farms", func() (any, error) {
		return c.API.ListFarms(ctx.Request.Context(), token)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}

// GetFarm 获取农场详情
func (c *FarmController) GetFarm(ctx *gin.Context) {
	id, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	farm, err := c.API.GetFarm(ctx.Request.Context(), bearerToken(ctx), id)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, farm)
}

// CreateFarm 创建农场
func (c *FarmController) CreateFarm(ctx *gin.Context) {
	var farm models.Farm
	if err := ctx.ShouldBindJSON(&farm); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	created, err := c.API.CreateFarm(ctx.Request.Context(), bearerToken(ctx), farm)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("farms")
	utils.Created(ctx, created)
}

// UpdateFarm 更新农场
func (c *FarmController) UpdateFarm(ctx *gin.Context) {
	id, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	var farm models.Farm
	if err := ctx.ShouldBindJSON(&farm); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	farm.ID = id
	updated, err := c.API.UpdateFarm(ctx.Request.Context(), bearerToken(ctx), farm)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("farms")
	utils.Success(ctx, updated)
}

// DeleteFarm 删除农场
func (c *FarmController) DeleteFarm(ctx *gin.Context) {
	id, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	if err := c.API.DeleteFarm(ctx.Request.Context(), bearerToken(ctx), id); err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("farms")
	utils.NoContent(ctx)
}

// ListSectors 获取某农场的分区列表
func (c *FarmController) ListSectors(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	token := bearerToken(ctx)
	v, err := c.Cache.Do(fmt.Sprintf("farms:%d:sectors", farmID), func() (any, error) {
		return c.API.ListSectors(ctx.Request.Context(), token, farmID)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}

// CreateSector 在某农场下创建分区
func (c *FarmController) CreateSector(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	var sector models.Sector
	if err := ctx.ShouldBindJSON(&sector); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	sector.FarmID = farmID
	created, err := c.API.CreateSector(ctx.Request.Context(), bearerToken(ctx), sector)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d", farmID))
	utils.Created(ctx, created)
}

// UpdateSector 更新分区
func (c *FarmController) UpdateSector(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	sectorID, ok := pathID(ctx, "sectorId")
	if !ok {
		return
	}
	var sector models.Sector
	if err := ctx.ShouldBindJSON(&sector); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	sector.FarmID = farmID
	sector.ID = sectorID
	updated, err := c.API.UpdateSector(ctx.Request.Context(), bearerToken(ctx), sector)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d", farmID))
	utils.Success(ctx, updated)
}

// DeleteSector 删除分区
func (c *FarmController) DeleteSector(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	sectorID, ok := pathID(ctx, "sectorId")
	if !ok {
		return
	}
	if err := c.API.DeleteSector(ctx.Request.Context(), bearerToken(ctx), farmID, sectorID); err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d", farmID))
	utils.NoContent(ctx)
}
