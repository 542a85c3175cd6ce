package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-riegopanel/cache"
	"go-riegopanel/calendar"
	"go-riegopanel/client"
	"go-riegopanel/models"
	"go-riegopanel/utils"
)

// CalendarController 处理月度灌溉日历的请求
type CalendarController struct {
	API   *client.Client
	Cache *cache.Group
}

// NewCalendarController 创建一个新的CalendarController实例
func NewCalendarController(api *client.Client, group *cache.Group) *CalendarController {
	return &CalendarController{API: api, Cache: group}
}

// calendarSector 日历格里单个分区的合计
type calendarSector struct {
	SectorID   int     `json:"sectorId"`
	SectorName string  `json:"sectorName"`
	WaterM3    float64 `json:"waterM3"`
	Hours      float64 `json:"hours"`
}

// calendarDay 日历里的一天
type calendarDay struct {
	Day     int              `json:"day"`
	Status  string           `json:"status"`
	RainMm  float64          `json:"rainMm"`
	Sectors []calendarSector `json:"sectors"`
}

// Monthly 获取某农场某月的灌溉日历
//
// 从后端取分区视图，本地汇总成逐日网格：每格带所有分区的用水/时长
// 合计、当天降水和 past/today/future 标记。
func (c *CalendarController) Monthly(ctx *gin.Context) {
	farmID, ok := pathID(ctx, "farmId")
	if !ok {
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		utils.BadRequest(ctx, "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		utils.BadRequest(ctx, "invalid month")
		return
	}

	token := bearerToken(ctx)
	key := fmt.Sprintf("calendar:%d:%d-%02d", farmID, year, month)
	v, err := c.Cache.Do(key, func() (any, error) {
		return c.API.MonthlyViews(ctx.Request.Context(), token, farmID, year, month)
	})
	if err != nil {
		renderClientError(ctx, err)
		return
	}
	views := v.([]models.MonthlySectorView)

	totals := calendar.Aggregate(views, year, time.Month(month), time.Now())

	days := make([]calendarDay, 0, totals.Days)
	for day := 1; day <= totals.Days; day++ {
		cell := calendarDay{
			Day:     day,
			Status:  totals.Status[day].String(),
			RainMm:  totals.RainOn(day),
			Sectors: make([]calendarSector, 0, len(views)),
		}
		for _, view := range views {
			t := totals.SectorDay(view.SectorID, day)
			cell.Sectors = append(cell.Sectors, calendarSector{
				SectorID:   view.SectorID,
				SectorName: view.SectorName,
				WaterM3:    t.WaterM3,
				Hours:      t.Hours,
			})
		}
		days = append(days, cell)
	}

	utils.Success(ctx, gin.H{
		"farmId": farmID,
		"year":   year,
		"month":  month,
		"days":   days,
	})
}
