package service

import (
	"fmt"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

// GoalService 负责每日目标与连胜计数的读写
// 目标在首次读取时以默认值懒创建；连胜数值由外部调用方维护，这里只做存取
type GoalService struct {
	db *gorm.DB
}

// NewGoalService 构造 GoalService
func NewGoalService(gdb *gorm.DB) *GoalService {
	return &GoalService{db: gdb}
}

// GoalsInput 定义部分更新目标时的字段，nil 表示保持原值
type GoalsInput struct {
	CalorieTarget *int
	WaterTargetMl *int
}

// StreaksInput 定义部分更新连胜计数时的字段，nil 表示保持原值
type StreaksInput struct {
	CalorieStreak *int
	WaterStreak   *int
	BothStreak    *int
}

// Get 返回设备的目标，不存在时按默认值创建
func (s *GoalService) Get(deviceID string) (*db.Goals, error) {
	if err := getOrCreateDevice(s.db, deviceID); err != nil {
		return nil, err
	}

	goals := db.Goals{
		CalorieTarget: db.DefaultCalorieTarget,
		WaterTargetMl: db.DefaultWaterTargetMl,
	}
	if err := s.db.Where(db.Goals{DeviceID: deviceID}).
		Attrs(goals).
		FirstOrCreate(&goals).Error; err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	return &goals, nil
}

// Update 部分更新目标，未传字段保持原值
func (s *GoalService) Update(deviceID string, input GoalsInput) (*db.Goals, error) {
	goals, err := s.Get(deviceID)
	if err != nil {
		return nil, err
	}

	if input.CalorieTarget != nil {
		goals.CalorieTarget = *input.CalorieTarget
	}
	if input.WaterTargetMl != nil {
		goals.WaterTargetMl = *input.WaterTargetMl
	}

	if err := s.db.Save(goals).Error; err != nil {
		return nil, fmt.Errorf("update goals: %w", err)
	}
	return goals, nil
}

// GetStreaks 返回设备的连胜计数，不存在时按零值创建
func (s *GoalService) GetStreaks(deviceID string) (*db.Streaks, error) {
	if err := getOrCreateDevice(s.db, deviceID); err != nil {
		return nil, err
	}

	var streaks db.Streaks
	if err := s.db.Where(db.Streaks{DeviceID: deviceID}).
		FirstOrCreate(&streaks).Error; err != nil {
		return nil, fmt.Errorf("get streaks: %w", err)
	}
	return &streaks, nil
}

// UpdateStreaks 部分更新连胜计数，未传字段保持原值
func (s *GoalService) UpdateStreaks(deviceID string, input StreaksInput) (*db.Streaks, error) {
	streaks, err := s.GetStreaks(deviceID)
	if err != nil {
		return nil, err
	}

	if input.CalorieStreak != nil {
		streaks.CalorieStreak = *input.CalorieStreak
	}
	if input.WaterStreak != nil {
		streaks.WaterStreak = *input.WaterStreak
	}
	if input.BothStreak != nil {
		streaks.BothStreak = *input.BothStreak
	}

	if err := s.db.Save(streaks).Error; err != nil {
		return nil, fmt.Errorf("update streaks: %w", err)
	}
	return streaks, nil
}
