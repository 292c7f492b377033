package db

import "gorm.io/gorm"

// 餐次类型
const (
	MealFasting        = "fasting"
	MealBreakfast      = "breakfast"
	MealLunch          = "lunch"
	MealAfternoonSnack = "afternoon_snack"
	MealDinner         = "dinner"
)

// Meal 定义了餐次模型
// Date 使用 YYYY-MM-DD 字符串，按字典序即按时间序
// TotalCalories 在创建时写定，读取历史数据时不重新推导
// Items 为空仅在 Type = fasting 时允许
type Meal struct {
	gorm.Model
	DeviceID      string `gorm:"size:64;index:idx_meals_device_date"`
	Date          string `gorm:"size:10;index:idx_meals_device_date"`
	Type          string `gorm:"size:24;not null"`
	TotalCalories float64
	Notes         string
	Items         []MealItem `gorm:"constraint:OnDelete:CASCADE"`
}

// MealItem 记录餐次中的单个条目
// Calories 是录入时由换算服务冻结的快照，食物数据变更后不回溯重算
// FoodID 允许为空，兼容仅有名称的自由文本条目
type MealItem struct {
	gorm.Model
	MealID   uint `gorm:"index"`
	FoodID   *uint
	FoodName string
	Quantity float64
	Unit     string `gorm:"size:8"`
	Calories float64
}

// TableName 指定自定义表名
func (MealItem) TableName() string {
	return "meal_items"
}
