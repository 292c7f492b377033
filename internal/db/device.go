package db

import "gorm.io/gorm"

// 新设备的默认目标值
const (
	DefaultCalorieTarget = 1600
	DefaultWaterTargetMl = 4000
)

// Device 以客户端生成的设备标识划分全部数据
// 该标识仅作分区键使用，不做身份校验
type Device struct {
	gorm.Model
	DeviceID string `gorm:"size:64;uniqueIndex;not null"`
}

// Goals 记录每个设备的每日目标
// 首次访问时以默认值 1600/4000 懒创建
type Goals struct {
	gorm.Model
	DeviceID      string `gorm:"size:64;uniqueIndex;not null"`
	CalorieTarget int    `gorm:"default:1600"`
	WaterTargetMl int    `gorm:"default:4000"`
}

// Streaks 记录连续达标计数
// 计数由外部调用方维护，核心逻辑只读展示
type Streaks struct {
	gorm.Model
	DeviceID      string `gorm:"size:64;uniqueIndex;not null"`
	CalorieStreak int
	WaterStreak   int
	BothStreak    int
}
