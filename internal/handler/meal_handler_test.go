package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
)

func TestCreateMealWithItems(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{
		"date": "2025-03-10",
		"type": "lunch",
		"items": []map[string]any{
			{"food_name": "白米饭", "quantity": 200, "unit": "g", "calories": 232},
			{"food_name": "鸡胸肉（煎）", "quantity": 150, "unit": "g", "calories": 248},
		},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", "device-a")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.CreateMeal(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var meal db.Meal
	if err := db.DB.Preload("Items").First(&meal).Error; err != nil {
		t.Fatalf("failed to load created meal: %v", err)
	}
	if meal.DeviceID != "device-a" || meal.TotalCalories != 480 || len(meal.Items) != 2 {
		t.Fatalf("unexpected meal: %+v", meal)
	}
}

func TestCreateMealRejectsUnknownType(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{"type": "brunch", "calories": 100}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/meals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", "device-a")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.CreateMeal(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestDeleteMealForeignDevice(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	meal := db.Meal{DeviceID: "device-a", Date: "2025-03-10", Type: "lunch", TotalCalories: 400}
	if err := db.DB.Create(&meal).Error; err != nil {
		t.Fatalf("failed to seed meal: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/meals/"+strconv.Itoa(int(meal.ID)), nil)
	req.Header.Set("X-Device-ID", "device-b")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(meal.ID))}}

	api.DeleteMeal(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	// 原设备的数据不受影响
	var count int64
	if err := db.DB.Model(&db.Meal{}).Where("device_id = ?", "device-a").Count(&count).Error; err != nil {
		t.Fatalf("failed to count meals: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected meal to survive, got %d rows", count)
	}
}
