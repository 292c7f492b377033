package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

// getOrCreateDevice 确保设备记录存在。
// 首次出现的设备会在同一事务内补齐默认目标与连胜计数。
func getOrCreateDevice(gdb *gorm.DB, deviceID string) error {
	id := strings.TrimSpace(deviceID)
	if id == "" {
		return errors.New("device id is required")
	}

	var device db.Device
	err := gdb.Where("device_id = ?", id).First(&device).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find device: %w", err)
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&db.Device{DeviceID: id}).Error; err != nil {
			return fmt.Errorf("create device: %w", err)
		}
		goals := db.Goals{
			DeviceID:      id,
			CalorieTarget: db.DefaultCalorieTarget,
			WaterTargetMl: db.DefaultWaterTargetMl,
		}
		if err := tx.Create(&goals).Error; err != nil {
			return fmt.Errorf("create default goals: %w", err)
		}
		if err := tx.Create(&db.Streaks{DeviceID: id}).Error; err != nil {
			return fmt.Errorf("create default streaks: %w", err)
		}
		return nil
	})
}
