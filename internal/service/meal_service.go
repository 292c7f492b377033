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
	// ErrMealNotFound 在餐次不存在或不属于该设备时返回
	ErrMealNotFound = errors.New("meal not found")
	// ErrMealInvalidType 在餐次类型不在支持范围内时返回
	ErrMealInvalidType = errors.New("invalid meal type")
	// ErrMealEmptyItems 在非禁食餐次既没有条目也没有旧结构字段时返回
	ErrMealEmptyItems = errors.New("meal requires at least one item")
)

const dateFormat = "2006-01-02"

// MealService 负责餐次的创建、查询与删除
// 入口同时接受条目列表与旧的单食物结构，进入存储前统一规整为条目列表
type MealService struct {
	db *gorm.DB
}

// NewMealService 构造 MealService
func NewMealService(gdb *gorm.DB) *MealService {
	return &MealService{db: gdb}
}

// MealItemInput 定义餐次条目，Calories 是录入时已换算好的热量
type MealItemInput struct {
	FoodID   *uint
	FoodName string
	Quantity float64
	Unit     string
	Calories float64
}

// MealInput 定义创建餐次的输入。
// Items 为空时回退读取 Legacy* 字段（旧版客户端一餐只带一个食物）。
// TotalCalories 显式传入时以它为准，否则取条目热量之和。
type MealInput struct {
	Date          string
	Type          string
	Items         []MealItemInput
	TotalCalories *float64
	Notes         string

	LegacyFoodID   *uint
	LegacyFoodName string
	LegacyQuantity float64
	LegacyCalories float64
}

func (in MealInput) hasLegacyFields() bool {
	return in.LegacyFoodID != nil ||
		strings.TrimSpace(in.LegacyFoodName) != "" ||
		in.LegacyQuantity > 0 ||
		in.LegacyCalories > 0
}

// Create 创建餐次及其条目，整体在一个事务内写入
func (s *MealService) Create(deviceID string, input MealInput) (*db.Meal, error) {
	mealType := strings.TrimSpace(strings.ToLower(input.Type))
	if !validMealType(mealType) {
		return nil, fmt.Errorf("%w: %s", ErrMealInvalidType, input.Type)
	}

	if err := getOrCreateDevice(s.db, deviceID); err != nil {
		return nil, err
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().Format(dateFormat)
	}

	items, total, err := normalizeMealInput(mealType, input)
	if err != nil {
		return nil, err
	}

	meal := db.Meal{
		DeviceID:      deviceID,
		Date:          date,
		Type:          mealType,
		TotalCalories: total,
		Notes:         strings.TrimSpace(input.Notes),
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meal).Error; err != nil {
			return fmt.Errorf("create meal: %w", err)
		}
		for i := range items {
			items[i].MealID = meal.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("create meal item: %w", err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	meal.Items = items
	return &meal, nil
}

// normalizeMealInput 将两种历史数据形态统一规整为条目列表与总热量。
// 禁食餐次忽略任何条目，总热量恒为 0。
func normalizeMealInput(mealType string, input MealInput) ([]db.MealItem, float64, error) {
	if mealType == db.MealFasting {
		return nil, 0, nil
	}

	if len(input.Items) > 0 {
		items := make([]db.MealItem, 0, len(input.Items))
		var sum float64
		for _, item := range input.Items {
			items = append(items, db.MealItem{
				FoodID:   item.FoodID,
				FoodName: strings.TrimSpace(item.FoodName),
				Quantity: item.Quantity,
				Unit:     normalizeFoodUnit(item.Unit),
				Calories: item.Calories,
			})
			sum += item.Calories
		}
		total := sum
		if input.TotalCalories != nil {
			total = *input.TotalCalories
		}
		return items, total, nil
	}

	if !input.hasLegacyFields() {
		return nil, 0, ErrMealEmptyItems
	}

	item := db.MealItem{
		FoodID:   input.LegacyFoodID,
		FoodName: strings.TrimSpace(input.LegacyFoodName),
		Quantity: input.LegacyQuantity,
		Unit:     db.UnitGram,
		Calories: input.LegacyCalories,
	}
	total := item.Calories
	if input.TotalCalories != nil {
		total = *input.TotalCalories
	}
	return []db.MealItem{item}, total, nil
}

// ListByDate 返回某日的全部餐次，附带条目，按创建时间倒序
func (s *MealService) ListByDate(deviceID, date string) ([]db.Meal, error) {
	if strings.TrimSpace(date) == "" {
		date = time.Now().Format(dateFormat)
	}

	var meals []db.Meal
	if err := s.db.Preload("Items").
		Where("device_id = ? AND date = ?", deviceID, date).
		Order("created_at DESC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// ListByRange 返回日期闭区间内的全部餐次，供周报与历史查询使用
func (s *MealService) ListByRange(deviceID, start, end string) ([]db.Meal, error) {
	var meals []db.Meal
	if err := s.db.Preload("Items").
		Where("device_id = ? AND date >= ? AND date <= ?", deviceID, start, end).
		Order("date ASC, created_at ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals by range: %w", err)
	}
	return meals, nil
}

// Delete 删除指定餐次，仅限本设备数据
func (s *MealService) Delete(deviceID string, id uint) error {
	result := s.db.Where("id = ? AND device_id = ?", id, deviceID).Delete(&db.Meal{})
	if result.Error != nil {
		return fmt.Errorf("delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func validMealType(mealType string) bool {
	switch mealType {
	case db.MealFasting, db.MealBreakfast, db.MealLunch, db.MealAfternoonSnack, db.MealDinner:
		return true
	}
	return false
}
