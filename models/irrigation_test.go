package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySectorViewDecodeListShape(t *testing.T) {
	raw := `{
		"sectorId": 3,
		"sectorName": "Sector Este",
		"dailyIrrigations": {
			"5": [{"waterAmount": 1.5, "irrigationHours": 2}]
		},
		"dailyPrecipitations": {
			"5": [{"mmRain": 2.5}, {"mmRain": 1.5}],
			"6": []
		}
	}`

	var view MonthlySectorView
	require.NoError(t, json.Unmarshal([]byte(raw), &view))

	assert.Equal(t, 3, view.SectorID)
	assert.InDelta(t, 4.0, view.DailyPrecipitations["5"], 1e-9)
	assert.Zero(t, view.DailyPrecipitations["6"])
	require.Len(t, view.DailyIrrigations["5"], 1)
	assert.InDelta(t, 1.5, view.DailyIrrigations["5"][0].WaterAmount, 1e-9)
}

func TestMonthlySectorViewDecodeScalarShape(t *testing.T) {
	// 旧格式：每天直接一个数值
	raw := `{
		"sectorId": 3,
		"sectorName": "Sector Este",
		"dailyIrrigations": {},
		"dailyPrecipitations": {"5": 4.2, "12": 0}
	}`

	var view MonthlySectorView
	require.NoError(t, json.Unmarshal([]byte(raw), &view))

	assert.InDelta(t, 4.2, view.DailyPrecipitations["5"], 1e-9)
	assert.Zero(t, view.DailyPrecipitations["12"])
}

func TestMonthlySectorViewDecodeAbsentPrecipitations(t *testing.T) {
	var view MonthlySectorView
	require.NoError(t, json.Unmarshal([]byte(`{"sectorId": 1, "dailyIrrigations": {}}`), &view))
	assert.Nil(t, view.DailyPrecipitations)

	require.NoError(t, json.Unmarshal([]byte(`{"sectorId": 1, "dailyIrrigations": {}, "dailyPrecipitations": null}`), &view))
	assert.Nil(t, view.DailyPrecipitations)
}

func TestDailyPrecipitationsDecodeRejectsGarbage(t *testing.T) {
	var d DailyPrecipitations
	assert.Error(t, json.Unmarshal([]byte(`{"5": "wet"}`), &d))
}
