package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-riegopanel/cache"
	"go-riegopanel/client"
	"go-riegopanel/utils"
)

// WeatherController 处理天气展示相关的请求
type WeatherController struct {
	API   *client.Client
	Cache *cache.Group
}

// NewWeatherController 创建一个新的WeatherController实例
func NewWeatherController(api *client.Client, group *cache.Group) *WeatherController {
	return &WeatherController{API: api, Cache: group}
}

// Current 获取某农场的当前天气
func (c *WeatherController) Current(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	token := bearerToken(ctx)
	v, err := c.Cache.Do(fmt.Sprintf("weather:%d:current", farmID), func() (any, error) {
		return c.API.CurrentWeather(ctx.Request.Context(), token, farmID)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}

// Forecast 获取某农场的天气预报，days 默认 7，上限 14
func (c *WeatherController) Forecast(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 14 {
		utils.BadRequest(ctx, "days must be between 1 and 14")
		return
	}
	token := bearerToken(ctx)
	v, err := c.Cache.Do(fmt.Sprintf("weather:%d:forecast:%d", farmID, days), func() (any, error) {
		return c.API.WeatherForecast(ctx.Request.Context(), token, farmID, days)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	utils.Success(ctx, v)
}
