package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"go-riegopanel/cache"
	"go-riegopanel/client"
	"go-riegopanel/models"
	"go-riegopanel/utils"
)

// EquipmentController 处理设备和水源相关的请求
type EquipmentController struct {
	API   *client.Client
	Cache *cache.Group
}

// NewEquipmentController 创建一个新的EquipmentController实例
func NewEquipmentController(api *client.Client, group *cache.Group) *EquipmentController {
	return &EquipmentController{API: api, Cache: group}
}

// ListEquipment 获取设备列表
func (c *EquipmentController) ListEquipment(ctx *gin.Context) {
	token := bearerToken(ctx)
	v, err := c.Cache.Do("equipment", func() (any, error) {
		return c.API.ListEquipment(ctx.Request.Context(), token)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}

// CreateEquipment 登记新设备
func (c *EquipmentController) CreateEquipment(ctx *gin.Context) {
	var eq models.Equipment
	if err := ctx.ShouldBindJSON(&eq); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	created, err := c.API.CreateEquipment(ctx.Request.Context(), bearerToken(ctx), eq)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("equipment")
	utils.Created(ctx, created)
}

// UpdateEquipment 更新设备
func (c *EquipmentController) UpdateEquipment(ctx *gin.Context) {
	id, ok := pathID(ctx, "equipmentId")
	if !ok {
		return
	}
	var eq models.Equipment
	if err := ctx.ShouldBindJSON(&eq); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	eq.ID = id
	updated, err := c.API.UpdateEquipment(ctx.Request.Context(), bearerToken(ctx), eq)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("equipment")
	utils.Success(ctx, updated)
}

// DeleteEquipment 删除设备
func (c *EquipmentController) DeleteEquipment(ctx *gin.Context) {
	id, ok := pathID(ctx, "equipmentId")
	if !ok {
		return
	}
	if err := c.API.DeleteEquipment(ctx.Request.Context(), bearerToken(ctx), id); err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate("equipment")
	utils.NoContent(ctx)
}

// ListWaterSources 获取某农场的水源列表
func (c *EquipmentController) ListWaterSources(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	token := bearerToken(ctx)
	v, err := c.Cache.Do(fmt.Sprintf("farms:%d:water-sources", farmID), func() (any, error) {
		return c.API.ListWaterSources(ctx.Request.Context(), token, farmID)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}

// CreateWaterSource 登记新水源
func (c *EquipmentController) CreateWaterSource(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	var ws models.WaterSource
	if err := ctx.ShouldBindJSON(&ws); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	ws.FarmID = farmID
	created, err := c.API.CreateWaterSource(ctx.Request.Context(), bearerToken(ctx), ws)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d:water-sources", farmID))
	utils.Created(ctx, created)
}

// UpdateWaterSource 更新水源
func (c *EquipmentController) UpdateWaterSource(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	sourceID, ok := pathID(ctx, "sourceId")
	if !ok {
		return
	}
	var ws models.WaterSource
	if err := ctx.ShouldBindJSON(&ws); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	ws.FarmID = farmID
	ws.ID = sourceID
	updated, err := c.API.UpdateWaterSource(ctx.Request.Context(), bearerToken(ctx), ws)
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d:water-sources", farmID))
	utils.Success(ctx, updated)
}

// DeleteWaterSource 删除水源
func (c *EquipmentController) DeleteWaterSource(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	sourceID, ok := pathID(ctx, "sourceId")
	if !ok {
		return
	}
	if err := c.API.DeleteWaterSource(ctx.Request.Context(), bearerToken(ctx), farmID, sourceID); err != nil {
		renderClientError(ctx, err)
		return
	}
	c.Cache.Invalidate(fmt.Sprintf("farms:%d:water-sources", farmID))
	utils.NoContent(ctx)
}
