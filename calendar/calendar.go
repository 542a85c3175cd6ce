// Package calendar 把后端下发的稀疏月度灌溉/降水数据汇总成日历视图需要的每日合计。
package calendar

import (
	"math"
	"strconv"
	"time"

	"go-riegopanel/models"
)

// DayStatus 日历格相对于今天的分类，仅用于展示样式
type DayStatus int

const (
	DayPast DayStatus = iota
	DayToday
	DayFuture
)

// String 返回分类的展示名
func (s DayStatus) String() string {
	switch s {
	case DayPast:
		return "past"
	case DayToday:
		return "today"
	case DayFuture:
		return "future"
	default:
		return "unknown"
	}
}

// SectorDayTotal 某分区某天的灌溉合计
type SectorDayTotal struct {
	WaterM3 float64 `json:"waterM3"`
	Hours   float64 `json:"hours"`
}

// MonthTotals 一个农场一个月的汇总结果
//
// Sectors 按 分区ID -> 日期 -> 合计 组织，只包含输入里实际出现的键；
// 读取时请使用 SectorDay，缺失的键一律按零值处理。
type MonthTotals struct {
	Year    int
	Month   time.Month
	Days    int
	Sectors map[int]map[int]SectorDayTotal
	Rain    map[int]float64
	Status  map[int]DayStatus
}

// DaysIn 返回某年某月的天数，通过"下个月第0天"的日历运算得出，自动处理闰年
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Aggregate 汇总一个月的分区视图
//
// 纯函数：不做任何 I/O，不修改输入，相同输入必得相同输出。
// 日期键超出 [1, 当月天数] 范围的记录会被丢弃，缺失的数值字段按 0 累加。
func Aggregate(views []models.MonthlySectorView, year int, month time.Month, today time.Time) MonthTotals {
	days := DaysIn(year, month)

	totals := MonthTotals{
		Year:    year,
		Month:   month,
		Days:    days,
		Sectors: make(map[int]map[int]SectorDayTotal, len(views)),
		Rain:    make(map[int]float64),
		Status:  make(map[int]DayStatus, days),
	}

	for day := 1; day <= days; day++ {
		totals.Status[day] = classify(year, month, day, today)
	}

	for _, view := range views {
		for key, records := range view.DailyIrrigations {
			day, ok := parseDay(key, days)
			if !ok {
				continue
			}
			var t SectorDayTotal
			for _, r := range records {
				t.WaterM3 += safe(r.WaterAmount)
				t.Hours += safe(r.IrrigationHours)
			}
			if totals.Sectors[view.SectorID] == nil {
				totals.Sectors[view.SectorID] = make(map[int]SectorDayTotal)
			}
			prev := totals.Sectors[view.SectorID][day]
			totals.Sectors[view.SectorID][day] = SectorDayTotal{
				WaterM3: prev.WaterM3 + t.WaterM3,
				Hours:   prev.Hours + t.Hours,
			}
		}

		// 降水是农场级别的数据，各分区视图可能重复携带同一份，按天取值而不叠加
		for key, mm := range view.DailyPrecipitations {
			day, ok := parseDay(key, days)
			if !ok {
				continue
			}
			totals.Rain[day] = safe(mm)
		}
	}

	return totals
}

// SectorDay 读取某分区某天的合计，缺失的键返回零值
func (m MonthTotals) SectorDay(sectorID, day int) SectorDayTotal {
	return m.Sectors[sectorID][day]
}

// RainOn 读取某天的降水合计，缺失的键返回 0
func (m MonthTotals) RainOn(day int) float64 {
	return m.Rain[day]
}

// classify 按天粒度比较，时分秒在比较前归一化掉
func classify(year int, month time.Month, day int, today time.Time) DayStatus {
	cell := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case cell.Before(ref):
		return DayPast
	case cell.Equal(ref):
		return DayToday
	default:
		return DayFuture
	}
}

// parseDay 解析日期键并校验范围，非法键丢弃
func parseDay(key string, days int) (int, bool) {
	day, err := strconv.Atoi(key)
	if err != nil || day < 1 || day > days {
		return 0, false
	}
	return day, true
}

// safe 把 NaN/Inf 当作 0 累加，避免脏数据污染合计
func safe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
