package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nutrilog/internal/cache"
	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrFoodNotFound 在指定食物不存在时返回
	ErrFoodNotFound = errors.New("food not found")
	// ErrFoodExists 在食物名称已存在（不区分大小写）时返回
	ErrFoodExists = errors.New("food already exists")
	// ErrFoodInvalidInput 在输入数据不完整时返回
	ErrFoodInvalidInput = errors.New("invalid food input")
)

const (
	foodListLimit = 50
	foodCacheTTL  = 10 * time.Minute

	// 个数单位的近似换算：1 个 ≈ 50 克
	gramsPerCount = 50
)

// FoodService 负责食物库的查询、录入与热量换算
// 食物库为全局共享数据，读多写少，可选挂接 Redis 缓存
type FoodService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// FoodInput 定义新增食物时可配置字段
type FoodInput struct {
	Name           string
	CaloriesPer100 float64
	Category       string
	Unit           string
}

// NewFoodService 构造 FoodService，cache 传 nil 表示不启用缓存
func NewFoodService(gdb *gorm.DB, c *cache.Cache) *FoodService {
	return &FoodService{db: gdb, cache: c}
}

// List 返回食物列表，支持名称子串搜索（不区分大小写），最多 50 条，按名称排序
func (s *FoodService) List(search string) ([]db.Food, error) {
	term := strings.ToLower(strings.TrimSpace(search))
	key := fmt.Sprintf("foods:list:%s", term)

	var cached []db.Food
	if err := s.cache.Get(key, &cached); err == nil {
		return cached, nil
	}

	query := s.db.Model(&db.Food{})
	if term != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
	}

	var foods []db.Food
	if err := query.Order("name ASC").Limit(foodListLimit).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	// 缓存失败按未命中处理
	_ = s.cache.Set(key, foods, foodCacheTTL)

	return foods, nil
}

// Get 根据 ID 获取食物
func (s *FoodService) Get(id uint) (*db.Food, error) {
	var food db.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &food, nil
}

// GetByName 根据名称获取食物，不区分大小写
func (s *FoodService) GetByName(name string) (*db.Food, error) {
	var food db.Food
	if err := s.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food by name: %w", err)
	}
	return &food, nil
}

// Create 新增食物，名称重复时拒绝
func (s *FoodService) Create(input FoodInput) (*db.Food, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrFoodInvalidInput)
	}
	if input.CaloriesPer100 < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", ErrFoodInvalidInput)
	}

	if _, err := s.GetByName(name); err == nil {
		return nil, ErrFoodExists
	} else if !errors.Is(err, ErrFoodNotFound) {
		return nil, err
	}

	food := db.Food{
		Name:           name,
		CaloriesPer100: input.CaloriesPer100,
		Category:       strings.TrimSpace(input.Category),
		Unit:           normalizeFoodUnit(input.Unit),
	}
	if food.Category == "" {
		food.Category = "其他"
	}

	if err := s.db.Create(&food).Error; err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}

	_ = s.cache.DeletePattern("foods:*")

	return &food, nil
}

// ConvertCalories 根据食物热量密度换算指定数量、单位的热量
func (s *FoodService) ConvertCalories(foodID uint, quantity float64, unit string) (int, error) {
	food, err := s.Get(foodID)
	if err != nil {
		return 0, err
	}
	return ConvertToCalories(food.CaloriesPer100, quantity, normalizeFoodUnit(unit), food.Unit), nil
}

// ConvertToCalories 将数量与单位换算为整数千卡。
// 请求单位为个而食物按克计时，按 1 个 ≈ 50 克折算；
// 毫升与克按密度 1 近似，直接按数量缩放。
func ConvertToCalories(caloriesPer100, quantity float64, sourceUnit, targetUnit string) int {
	if sourceUnit == db.UnitCount && targetUnit == db.UnitGram {
		quantity = quantity * gramsPerCount
	}
	return int(math.Round(caloriesPer100 / 100 * quantity))
}

func normalizeFoodUnit(unit string) string {
	switch strings.TrimSpace(strings.ToLower(unit)) {
	case db.UnitMilliliter:
		return db.UnitMilliliter
	case db.UnitCount:
		return db.UnitCount
	default:
		return db.UnitGram
	}
}
