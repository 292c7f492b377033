package service

import (
	"testing"
	"time"

	"github.com/nutrilog/internal/db"
)

func TestEvaluateDay(t *testing.T) {
	goals := db.Goals{CalorieTarget: 1600, WaterTargetMl: 4000}

	tests := []struct {
		name       string
		totals     DayTotals
		metCalorie bool
		metWater   bool
		metBoth    bool
	}{
		{
			name:       "within window and enough water",
			totals:     DayTotals{TotalCalories: 1400, TotalWaterMl: 4000},
			metCalorie: true,
			metWater:   true,
			metBoth:    true,
		},
		{
			name:       "below 80 percent of target",
			totals:     DayTotals{TotalCalories: 1000, TotalWaterMl: 4000},
			metCalorie: false,
			metWater:   true,
			metBoth:    false,
		},
		{
			name:       "over target",
			totals:     DayTotals{TotalCalories: 1700, TotalWaterMl: 4000},
			metCalorie: false,
			metWater:   true,
			metBoth:    false,
		},
		{
			name:       "exactly at boundaries",
			totals:     DayTotals{TotalCalories: 1280, TotalWaterMl: 3999},
			metCalorie: true,
			metWater:   false,
			metBoth:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateDay(tt.totals, goals)
			if got.MetCalorie != tt.metCalorie || got.MetWater != tt.metWater || got.MetBoth != tt.metBoth {
				t.Fatalf("unexpected result: %+v", got)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		want   string
	}{
		{name: "wednesday", anchor: "2025-03-12", want: "2025-03-10"},
		{name: "monday itself", anchor: "2025-03-10", want: "2025-03-10"},
		{name: "sunday belongs to previous monday", anchor: "2025-03-16", want: "2025-03-10"},
		{name: "across month boundary", anchor: "2025-03-01", want: "2025-02-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor, err := time.Parse(dateFormat, tt.anchor)
			if err != nil {
				t.Fatalf("failed to parse anchor: %v", err)
			}
			got := WeekStart(anchor).Format(dateFormat)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDailyTotalsFallback(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	mealSvc := NewMealService(db.DB)
	waterSvc := NewWaterService(db.DB)
	svc := NewReportService(db.DB, NewGoalService(db.DB))

	// 有条目的餐次按条目求和
	if _, err := mealSvc.Create("device-a", MealInput{
		Date: "2025-03-10",
		Type: db.MealLunch,
		Items: []MealItemInput{
			{FoodName: "白米饭", Quantity: 200, Calories: 232},
			{FoodName: "西兰花（煮）", Quantity: 100, Calories: 35},
		},
	}); err != nil {
		t.Fatalf("failed to create meal: %v", err)
	}

	// 无条目的历史餐次回退到存储的总热量字段
	legacy := db.Meal{DeviceID: "device-a", Date: "2025-03-10", Type: db.MealDinner, TotalCalories: 600}
	if err := db.DB.Create(&legacy).Error; err != nil {
		t.Fatalf("failed to seed legacy meal: %v", err)
	}

	if _, err := waterSvc.Add("device-a", "2025-03-10", 500); err != nil {
		t.Fatalf("failed to add water: %v", err)
	}
	if _, err := waterSvc.Add("device-a", "2025-03-10", 300); err != nil {
		t.Fatalf("failed to add water: %v", err)
	}

	totals, err := svc.DailyTotals("device-a", "2025-03-10")
	if err != nil {
		t.Fatalf("DailyTotals returned error: %v", err)
	}

	if totals.TotalCalories != 867 {
		t.Fatalf("expected 867 kcal, got %v", totals.TotalCalories)
	}
	if totals.TotalWaterMl != 800 {
		t.Fatalf("expected 800 ml, got %d", totals.TotalWaterMl)
	}
	if totals.MealCount != 2 {
		t.Fatalf("expected 2 meals, got %d", totals.MealCount)
	}

	// 幂等：无写入时重复计算结果一致
	again, err := svc.DailyTotals("device-a", "2025-03-10")
	if err != nil {
		t.Fatalf("DailyTotals returned error: %v", err)
	}
	if *again != *totals {
		t.Fatalf("expected identical totals, got %+v vs %+v", again, totals)
	}
}

func TestWeeklyReportShape(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	mealSvc := NewMealService(db.DB)
	waterSvc := NewWaterService(db.DB)
	svc := NewReportService(db.DB, NewGoalService(db.DB))

	// 周三记一餐 1400 千卡、4000 毫升水，应当双达标
	if _, err := mealSvc.Create("device-a", MealInput{
		Date:  "2025-03-12",
		Type:  db.MealLunch,
		Items: []MealItemInput{{FoodName: "午餐", Quantity: 1, Calories: 1400}},
	}); err != nil {
		t.Fatalf("failed to create meal: %v", err)
	}
	if _, err := waterSvc.Add("device-a", "2025-03-12", 4000); err != nil {
		t.Fatalf("failed to add water: %v", err)
	}

	anchor, err := time.Parse(dateFormat, "2025-03-14")
	if err != nil {
		t.Fatalf("failed to parse anchor: %v", err)
	}

	days, err := svc.Weekly("device-a", anchor)
	if err != nil {
		t.Fatalf("Weekly returned error: %v", err)
	}

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}

	// 周一开始，日期严格递增且连续
	monday, _ := time.Parse(dateFormat, "2025-03-10")
	for i, day := range days {
		want := monday.AddDate(0, 0, i).Format(dateFormat)
		if day.Date != want {
			t.Fatalf("day %d: expected date %s, got %s", i, want, day.Date)
		}
	}

	wednesday := days[2]
	if wednesday.TotalCalories != 1400 || wednesday.TotalWaterMl != 4000 || wednesday.MealCount != 1 {
		t.Fatalf("unexpected wednesday totals: %+v", wednesday.DayTotals)
	}
	if !wednesday.MetCalorie || !wednesday.MetWater || !wednesday.MetBoth {
		t.Fatalf("expected wednesday to meet both goals: %+v", wednesday.DayGoals)
	}

	// 空白天不达标（摄入 0 低于目标下限 80%）
	if days[0].MetCalorie || days[0].MetBoth {
		t.Fatalf("expected empty monday to miss calorie goal: %+v", days[0].DayGoals)
	}
}
