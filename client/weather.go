package client

import (
	"context"
	"fmt"

	"go-riegopanel/models"
)

// CurrentWeather 获取某农场的当前天气
func (c *Client) CurrentWeather(ctx context.Context, token string, farmID int) (models.WeatherSnapshot, error) {
	var out models.WeatherSnapshot
	err := c.get(ctx, fmt.Sprintf("/api/farms/%d/weather/current", farmID), token, &out)
	return out, err
}

// WeatherForecast 获取某农场未来 days 天的天气预报
func (c *Client) WeatherForecast(ctx context.Context, token string, farmID, days int) ([]models.WeatherForecastDay, error) {
	var out []models.WeatherForecastDay
	err := c.get(ctx, fmt.Sprintf("/api/farms/%d/weather/forecast?days=%d", farmID, days), token, &out)
	return out, err
}
