package models

import "encoding/json"

// IrrigationDayRecord 某天某分区的一条灌溉记录
type IrrigationDayRecord struct {
	WaterAmount     float64 `json:"waterAmount"`     // 用水量，单位 m³
	IrrigationHours float64 `json:"irrigationHours"` // 灌溉时长，单位小时
}

// PrecipitationDayRecord 某天的一条降水记录（全农场级别，不分区）
type PrecipitationDayRecord struct {
	MmRain float64 `json:"mmRain"`
}

// DailyPrecipitations 按天归一化后的降水总量，键为月内日期（"1".."31"）
//
// 后端有两种历史格式：每天一个记录列表，或每天直接一个数值。
// 解码时在边界处统一归一化为 天->总毫米数，内部逻辑不再区分格式。
type DailyPrecipitations map[string]float64

// UnmarshalJSON 同时接受记录列表格式和旧的标量格式
func (d *DailyPrecipitations) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}

	var lists map[string][]PrecipitationDayRecord
	if err := json.Unmarshal(data, &lists); err == nil {
		out := make(DailyPrecipitations, len(lists))
		for day, records := range lists {
			var total float64
			for _, r := range records {
				total += r.MmRain
			}
			out[day] = total
		}
		*d = out
		return nil
	}

	var scalars map[string]float64
	if err := json.Unmarshal(data, &scalars); err != nil {
		return err
	}
	*d = DailyPrecipitations(scalars)
	return nil
}

// MonthlySectorView 后端下发的单个分区的月度数据
//
// dailyIrrigations 的键是月内日期的字符串形式，不保证覆盖每一天，
// 缺失的键表示当天没有记录。
type MonthlySectorView struct {
	SectorID            int                              `json:"sectorId"`
	SectorName          string                           `json:"sectorName"`
	DailyIrrigations    map[string][]IrrigationDayRecord `json:"dailyIrrigations"`
	DailyPrecipitations DailyPrecipitations              `json:"dailyPrecipitations,omitempty"`
}
