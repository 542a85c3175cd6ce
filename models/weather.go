package models

import "time"

// WeatherSnapshot 某农场的当前天气观测
type WeatherSnapshot struct {
	FarmID     int       `json:"farmId"`
	TempC      float64   `json:"tempC"`
	Humidity   float64   `json:"humidity"`
	WindKmh    float64   `json:"windKmh"`
	RainMm     float64   `json:"rainMm"`
	Condition  string    `json:"condition"`
	ObservedAt time.Time `json:"observedAt"`
}

// WeatherForecastDay 未来某天的天气预报
type WeatherForecastDay struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	TempMinC  float64 `json:"tempMinC"`
	TempMaxC  float64 `json:"tempMaxC"`
	RainMm    float64 `json:"rainMm"`
	Condition string  `json:"condition"`
}
