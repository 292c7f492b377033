package db

import "gorm.io/gorm"

// 食物计量单位，热量密度统一按每 100 单位存储
const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitCount      = "unit"
)

// Food 定义了食物模型
// CaloriesPer100 表示每 100 g/ml/个 的热量（kcal）
// Name 不区分大小写唯一，由 service 层在写入前校验
// 历史餐次条目引用后不再级联更新
type Food struct {
	gorm.Model
	Name           string  `gorm:"uniqueIndex;not null"`
	CaloriesPer100 float64 `gorm:"not null"`
	Category       string  `gorm:"size:32"`
	Unit           string  `gorm:"size:8;default:g"`
}
