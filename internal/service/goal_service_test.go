package service

import (
	"testing"

	"github.com/nutrilog/internal/db"
)

func TestGoalServiceLazyDefaults(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGoalService(db.DB)

	goals, err := svc.Get("device-a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if goals.CalorieTarget != 1600 || goals.WaterTargetMl != 4000 {
		t.Fatalf("expected defaults 1600/4000, got %d/%d", goals.CalorieTarget, goals.WaterTargetMl)
	}

	// 懒创建应当落库，而不是每次都临时生成
	var count int64
	if err := db.DB.Model(&db.Goals{}).Where("device_id = ?", "device-a").Count(&count).Error; err != nil {
		t.Fatalf("failed to count goals: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 goals row, got %d", count)
	}
}

func TestGoalServicePartialUpdate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGoalService(db.DB)

	calories := 1800
	goals, err := svc.Update("device-a", GoalsInput{CalorieTarget: &calories})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if goals.CalorieTarget != 1800 {
		t.Fatalf("expected calorie target 1800, got %d", goals.CalorieTarget)
	}
	// 未传字段保持默认值
	if goals.WaterTargetMl != 4000 {
		t.Fatalf("expected water target to keep 4000, got %d", goals.WaterTargetMl)
	}

	water := 3000
	goals, err = svc.Update("device-a", GoalsInput{WaterTargetMl: &water})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if goals.CalorieTarget != 1800 || goals.WaterTargetMl != 3000 {
		t.Fatalf("unexpected goals after second update: %d/%d", goals.CalorieTarget, goals.WaterTargetMl)
	}
}

func TestGoalServiceStreaks(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGoalService(db.DB)

	streaks, err := svc.GetStreaks("device-a")
	if err != nil {
		t.Fatalf("GetStreaks returned error: %v", err)
	}
	if streaks.CalorieStreak != 0 || streaks.WaterStreak != 0 || streaks.BothStreak != 0 {
		t.Fatalf("expected zeroed streaks, got %+v", streaks)
	}

	calorie := 3
	both := 1
	streaks, err = svc.UpdateStreaks("device-a", StreaksInput{CalorieStreak: &calorie, BothStreak: &both})
	if err != nil {
		t.Fatalf("UpdateStreaks returned error: %v", err)
	}
	if streaks.CalorieStreak != 3 || streaks.WaterStreak != 0 || streaks.BothStreak != 1 {
		t.Fatalf("unexpected streaks: %+v", streaks)
	}
}
