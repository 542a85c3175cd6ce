package models

// 设备状态常量
const (
	EquipmentActive      = "ACTIVE"
	EquipmentMaintenance = "MAINTENANCE"
	EquipmentRetired     = "RETIRED"
)

// Equipment 灌溉设备模型
type Equipment struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	SectorID     int     `json:"sectorId,omitempty"`
	FlowRateM3H  float64 `json:"flowRateM3h"`
	Manufacturer string  `json:"manufacturer,omitempty"`
}

// WaterSource 水源模型（水井、水库、渠道等）
type WaterSource struct {
	ID         int     `json:"id"`
	FarmID     int     `json:"farmId"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	CapacityM3 float64 `json:"capacityM3"`
	Active     bool    `json:"active"`
}
