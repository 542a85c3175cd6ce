package models

import "time"

// AuditEntry 后端操作审计记录，仪表盘只读展示
type AuditEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entityId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SectorReport 月度报表中单个分区的汇总
type SectorReport struct {
	SectorID     int     `json:"sectorId"`
	SectorName   string  `json:"sectorName"`
	TotalWaterM3 float64 `json:"totalWaterM3"`
	TotalHours   float64 `json:"totalHours"`
}

// MonthlyReport 后端生成的某农场月度报表
type MonthlyReport struct {
	FarmID       int            `json:"farmId"`
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	TotalWaterM3 float64        `json:"totalWaterM3"`
	TotalHours   float64        `json:"totalHours"`
	TotalRainMm  float64        `json:"totalRainMm"`
	Sectors      []SectorReport `json:"sectors,omitempty"`
}
