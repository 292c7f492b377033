package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrProfileNotFound 在设备尚未填写档案时返回
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileInvalidInput 在必填字段缺失时返回
	ErrProfileInvalidInput = errors.New("invalid profile input")
)

// ProfileService 负责身体档案的读取与整体 upsert
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ProfileInput 定义保存档案时的全部字段，均为必填
type ProfileInput struct {
	Age           int
	Sex           string
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	GoalType      string
}

// Get 返回设备的身体档案
func (s *ProfileService) Get(deviceID string) (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.Where("device_id = ?", deviceID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert 整体写入档案，每个设备至多一条
func (s *ProfileService) Upsert(deviceID string, input ProfileInput) (*db.Profile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	if err := getOrCreateDevice(s.db, deviceID); err != nil {
		return nil, err
	}

	profile := db.Profile{
		DeviceID:      deviceID,
		Age:           input.Age,
		Sex:           strings.TrimSpace(strings.ToLower(input.Sex)),
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: strings.TrimSpace(strings.ToLower(input.ActivityLevel)),
		GoalType:      strings.TrimSpace(strings.ToLower(input.GoalType)),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age", "sex", "height_cm", "weight_kg", "activity_level", "goal_type", "updated_at",
		}),
	}).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	if err := s.db.Where("device_id = ?", deviceID).First(&profile).Error; err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return &profile, nil
}

func validateProfileInput(input ProfileInput) error {
	if input.Age <= 0 {
		return fmt.Errorf("%w: age is required", ErrProfileInvalidInput)
	}
	if strings.TrimSpace(input.Sex) == "" {
		return fmt.Errorf("%w: sex is required", ErrProfileInvalidInput)
	}
	if input.HeightCm <= 0 {
		return fmt.Errorf("%w: height is required", ErrProfileInvalidInput)
	}
	if input.WeightKg <= 0 {
		return fmt.Errorf("%w: weight is required", ErrProfileInvalidInput)
	}
	if strings.TrimSpace(input.ActivityLevel) == "" {
		return fmt.Errorf("%w: activity level is required", ErrProfileInvalidInput)
	}
	if strings.TrimSpace(input.GoalType) == "" {
		return fmt.Errorf("%w: goal type is required", ErrProfileInvalidInput)
	}
	return nil
}
