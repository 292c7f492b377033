package service

import (
	"math"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

// activityFactors 是活动水平到热量系数的固定映射，
// 未识别的取值回退到久坐系数。
var activityFactors = map[string]float64{
	db.ActivitySedentary:  1.2,
	db.ActivityLight:      1.375,
	db.ActivityModerate:   1.55,
	db.ActivityActive:     1.725,
	db.ActivityVeryActive: 1.9,
}

const (
	defaultActivityFactor = 1.2

	// 档案不完整时的安全回退目标值
	fallbackTarget = 1600

	// 减脂目标的热量下限
	minWeightLossTarget = 1200
)

// CalculateBMR 按 Mifflin-St Jeor 公式计算基础代谢率，四舍五入为整数
func CalculateBMR(age int, sex string, heightCm, weightKg float64) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == db.SexMale {
		base += 5
	} else {
		base -= 161
	}
	return int(math.Round(base))
}

// ActivityFactor 返回活动水平对应的系数
func ActivityFactor(level string) float64 {
	if factor, ok := activityFactors[level]; ok {
		return factor
	}
	return defaultActivityFactor
}

// RecommendedTarget 根据基础代谢、活动系数与目标类型推导每日建议热量。
// 减脂在维持热量基础上减 500 并保底 1200，增肌加 400。
func RecommendedTarget(bmr int, factor float64, goalType string) int {
	maintenance := int(math.Round(float64(bmr) * factor))

	switch goalType {
	case db.GoalWeightLoss:
		target := maintenance - 500
		if target < minWeightLossTarget {
			target = minWeightLossTarget
		}
		return target
	case db.GoalMuscleGain:
		return maintenance + 400
	default:
		return maintenance
	}
}

// TargetResult 汇总基础代谢与建议目标
type TargetResult struct {
	BMR               int
	RecommendedTarget int
}

// TargetService 基于身体档案推导建议热量目标
type TargetService struct {
	db *gorm.DB
}

// NewTargetService 构造 TargetService
func NewTargetService(gdb *gorm.DB) *TargetService {
	return &TargetService{db: gdb}
}

// Recommended 返回设备的建议目标。
// 档案缺失或不完整时回退到 {bmr: 0, target: 1600}，保证接口永不失败。
func (s *TargetService) Recommended(deviceID string) TargetResult {
	fallback := TargetResult{BMR: 0, RecommendedTarget: fallbackTarget}

	// 档案读取失败与档案不存在一视同仁，按约定降级而不报错
	var profile db.Profile
	if err := s.db.Where("device_id = ?", deviceID).First(&profile).Error; err != nil {
		return fallback
	}

	if profile.Age <= 0 || profile.Sex == "" || profile.HeightCm <= 0 ||
		profile.WeightKg <= 0 || profile.ActivityLevel == "" || profile.GoalType == "" {
		return fallback
	}

	bmr := CalculateBMR(profile.Age, profile.Sex, profile.HeightCm, profile.WeightKg)
	factor := ActivityFactor(profile.ActivityLevel)

	return TargetResult{
		BMR:               bmr,
		RecommendedTarget: RecommendedTarget(bmr, factor, profile.GoalType),
	}
}
