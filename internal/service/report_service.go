package service

import (
	"fmt"
	"time"

	"github.com/nutrilog/internal/db"
	"gorm.io/gorm"
)

// DayTotals 汇总单日的摄入数据
type DayTotals struct {
	Date          string
	TotalCalories float64
	TotalWaterMl  int
	MealCount     int
}

// DayGoals 表示单日各项目标是否达成
type DayGoals struct {
	MetCalorie bool
	MetWater   bool
	MetBoth    bool
}

// DaySummary 是周报中的单日记录
type DaySummary struct {
	DayTotals
	DayGoals
}

// ReportService 负责日汇总与周报
// 周报对整周统一套用当前目标值，目标不做历史化
type ReportService struct {
	db    *gorm.DB
	goals *GoalService
}

// NewReportService 构造 ReportService
func NewReportService(gdb *gorm.DB, goals *GoalService) *ReportService {
	return &ReportService{db: gdb, goals: goals}
}

// DailyTotals 汇总某日的热量、饮水与餐次数，纯读取无副作用
func (s *ReportService) DailyTotals(deviceID, date string) (*DayTotals, error) {
	var meals []db.Meal
	if err := s.db.Preload("Items").
		Where("device_id = ? AND date = ?", deviceID, date).
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("load meals for totals: %w", err)
	}

	var entries []db.WaterEntry
	if err := s.db.Where("device_id = ? AND date = ?", deviceID, date).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load water for totals: %w", err)
	}

	totals := DayTotals{Date: date, MealCount: len(meals)}
	for _, meal := range meals {
		totals.TotalCalories += mealCalories(meal)
	}
	for _, entry := range entries {
		totals.TotalWaterMl += entry.VolumeMl
	}
	return &totals, nil
}

// mealCalories 取单餐热量：有条目按条目求和，否则回退到存储的总热量字段。
// 两条路径是为兼容缺失其中一个字段的历史数据，读取时不做对账。
func mealCalories(meal db.Meal) float64 {
	if len(meal.Items) > 0 {
		var sum float64
		for _, item := range meal.Items {
			sum += item.Calories
		}
		return sum
	}
	return meal.TotalCalories
}

// EvaluateDay 判断单日目标达成情况。
// 热量在目标的 [80%, 100%] 区间内记为达标，饮水达到目标即达标。
func EvaluateDay(totals DayTotals, goals db.Goals) DayGoals {
	target := float64(goals.CalorieTarget)
	metCalorie := totals.TotalCalories <= target && totals.TotalCalories >= 0.8*target
	metWater := totals.TotalWaterMl >= goals.WaterTargetMl

	return DayGoals{
		MetCalorie: metCalorie,
		MetWater:   metWater,
		MetBoth:    metCalorie && metWater,
	}
}

// WeekStart 返回 anchor 所在周的周一零点，周日视为一周的第七天
func WeekStart(anchor time.Time) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// Weekly 生成 anchor 所在周（周一至周日）的 7 天汇总与目标达成情况
func (s *ReportService) Weekly(deviceID string, anchor time.Time) ([]DaySummary, error) {
	goals, err := s.goals.Get(deviceID)
	if err != nil {
		return nil, err
	}

	monday := WeekStart(anchor)
	start := monday.Format(dateFormat)
	end := monday.AddDate(0, 0, 6).Format(dateFormat)

	var meals []db.Meal
	if err := s.db.Preload("Items").
		Where("device_id = ? AND date >= ? AND date <= ?", deviceID, start, end).
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("load meals for weekly report: %w", err)
	}

	var entries []db.WaterEntry
	if err := s.db.Where("device_id = ? AND date >= ? AND date <= ?", deviceID, start, end).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load water for weekly report: %w", err)
	}

	mealsByDate := make(map[string][]db.Meal)
	for _, meal := range meals {
		mealsByDate[meal.Date] = append(mealsByDate[meal.Date], meal)
	}
	waterByDate := make(map[string]int)
	for _, entry := range entries {
		waterByDate[entry.Date] += entry.VolumeMl
	}

	summaries := make([]DaySummary, 0, 7)
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(dateFormat)

		totals := DayTotals{Date: date, MealCount: len(mealsByDate[date])}
		for _, meal := range mealsByDate[date] {
			totals.TotalCalories += mealCalories(meal)
		}
		totals.TotalWaterMl = waterByDate[date]

		summaries = append(summaries, DaySummary{
			DayTotals: totals,
			DayGoals:  EvaluateDay(totals, *goals),
		})
	}

	return summaries, nil
}
