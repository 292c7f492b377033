package db

import "gorm.io/gorm"

// WaterEntry 记录一次饮水
type WaterEntry struct {
	gorm.Model
	DeviceID string `gorm:"size:64;index:idx_water_device_date"`
	Date     string `gorm:"size:10;index:idx_water_device_date"`
	VolumeMl int
}

// TableName 指定自定义表名
func (WaterEntry) TableName() string {
	return "water_entries"
}
