package models

import "time"

// Farm 农场模型
type Farm struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	TotalAreaHa float64   `json:"totalAreaHa"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Sectors     []Sector  `json:"sectors,omitempty"`
}

// Sector 农场下的灌溉分区
type Sector struct {
	ID          int     `json:"id"`
	FarmID      int     `json:"farmId"`
	Name        string  `json:"name"`
	AreaHa      float64 `json:"areaHa"`
	CropType    string  `json:"cropType,omitempty"`
	EquipmentID int     `json:"equipmentId,omitempty"`
}
