package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrWaterNotFound 在饮水记录不存在或不属于该设备时返回
	ErrWaterNotFound = errors.New("water entry not found")
	// ErrWaterInvalidVolume 在饮水量不是正数时返回
	ErrWaterInvalidVolume = errors.New("water volume must be positive")
)

// WaterService 负责饮水记录的增删查
type WaterService struct {
	db *gorm.DB
}

// NewWaterService 构造 WaterService
func NewWaterService(gdb *gorm.DB) *WaterService {
	return &WaterService{db: gdb}
}

// Add 新增一条饮水记录，date 为空时取今天
func (s *WaterService) Add(deviceID, date string, volumeMl int) (*db.WaterEntry, error) {
	if volumeMl <= 0 {
		return nil, ErrWaterInvalidVolume
	}

	if err := getOrCreateDevice(s.db, deviceID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(date) == "" {
		date = time.Now().Format(dateFormat)
	}

	entry := db.WaterEntry{
		DeviceID: deviceID,
		Date:     date,
		VolumeMl: volumeMl,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create water entry: %w", err)
	}
	return &entry, nil
}

// ListByDate 返回某日的饮水记录及总量，按创建时间倒序
func (s *WaterService) ListByDate(deviceID, date string) (int, []db.WaterEntry, error) {
	if strings.TrimSpace(date) == "" {
		date = time.Now().Format(dateFormat)
	}

	var entries []db.WaterEntry
	if err := s.db.Where("device_id = ? AND date = ?", deviceID, date).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return 0, nil, fmt.Errorf("list water entries: %w", err)
	}

	total := 0
	for _, entry := range entries {
		total += entry.VolumeMl
	}
	return total, entries, nil
}

// ListByRange 返回日期闭区间内的饮水记录，供周报使用
func (s *WaterService) ListByRange(deviceID, start, end string) ([]db.WaterEntry, error) {
	var entries []db.WaterEntry
	if err := s.db.Where("device_id = ? AND date >= ? AND date <= ?", deviceID, start, end).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list water entries by range: %w", err)
	}
	return entries, nil
}

// Delete 删除指定饮水记录，仅限本设备数据
func (s *WaterService) Delete(deviceID string, id uint) error {
	result := s.db.Where("id = ? AND device_id = ?", id, deviceID).Delete(&db.WaterEntry{})
	if result.Error != nil {
		return fmt.Errorf("delete water entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWaterNotFound
	}
	return nil
}
