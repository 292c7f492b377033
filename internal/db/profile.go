package db

import "gorm.io/gorm"

// 性别
const (
	SexMale   = "male"
	SexFemale = "female"
)

// 活动水平
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// 目标类型
const (
	GoalWeightLoss  = "weight_loss"
	GoalMaintenance = "maintenance"
	GoalMuscleGain  = "muscle_gain"
)

// Profile 记录设备的身体档案，每个设备至多一条
// 整条记录整体 upsert，不保留字段级历史
type Profile struct {
	gorm.Model
	DeviceID      string `gorm:"size:64;uniqueIndex;not null"`
	Age           int
	Sex           string `gorm:"size:8"`
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"size:16"`
	GoalType      string `gorm:"size:16"`
}
