package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/service"
)

type mealItemPayload struct {
	FoodID   *uint   `json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
}

type createMealPayload struct {
	DeviceID      string            `json:"device_id"`
	Date          string            `json:"date"`
	Type          string            `json:"type"`
	Items         []mealItemPayload `json:"items"`
	TotalCalories *float64          `json:"total_calories"`
	Notes         string            `json:"notes"`

	// 旧版客户端的单食物字段，与 items 二选一
	FoodID   *uint   `json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
}

type mealPayload struct {
	ID            uint              `json:"id"`
	Date          string            `json:"date"`
	Type          string            `json:"type"`
	Items         []mealItemPayload `json:"items"`
	TotalCalories float64           `json:"total_calories"`
	Notes         string            `json:"notes"`
	CreatedAt     string            `json:"created_at"`
}

func mealToPayload(meal db.Meal) mealPayload {
	items := make([]mealItemPayload, 0, len(meal.Items))
	for _, item := range meal.Items {
		items = append(items, mealItemPayload{
			FoodID:   item.FoodID,
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Calories: item.Calories,
		})
	}

	return mealPayload{
		ID:            meal.ID,
		Date:          meal.Date,
		Type:          meal.Type,
		Items:         items,
		TotalCalories: meal.TotalCalories,
		Notes:         meal.Notes,
		CreatedAt:     meal.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateMeal 创建餐次，支持条目列表与旧版单食物两种请求结构
func (a *API) CreateMeal(c *gin.Context) {
	var payload createMealPayload
	if !bindJSON(c, &payload, "无效的餐次数据") {
		return
	}

	items := make([]service.MealItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, service.MealItemInput{
			FoodID:   item.FoodID,
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Calories: item.Calories,
		})
	}

	input := service.MealInput{
		Date:          payload.Date,
		Type:          payload.Type,
		Items:         items,
		TotalCalories: payload.TotalCalories,
		Notes:         payload.Notes,
	}
	if len(items) == 0 {
		input.LegacyFoodID = payload.FoodID
		input.LegacyFoodName = payload.FoodName
		input.LegacyQuantity = payload.Quantity
		input.LegacyCalories = payload.Calories
	}

	meal, err := a.meals.Create(deviceID(c, payload.DeviceID), input)
	if err != nil {
		handleMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": meal.ID})
}

// ListMeals 返回餐次列表。同时传 start 和 end 时按日期区间查询，
// 否则按单日查询，date 缺省为今天
func (a *API) ListMeals(c *gin.Context) {
	var meals []db.Meal
	var err error

	start, end := c.Query("start"), c.Query("end")
	if start != "" && end != "" {
		meals, err = a.meals.ListByRange(deviceID(c, ""), start, end)
	} else {
		meals, err = a.meals.ListByDate(deviceID(c, ""), c.Query("date"))
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取餐次列表失败")
		return
	}

	items := make([]mealPayload, 0, len(meals))
	for _, meal := range meals {
		items = append(items, mealToPayload(meal))
	}
	c.JSON(http.StatusOK, items)
}

// DeleteMeal 删除本设备的指定餐次
func (a *API) DeleteMeal(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的餐次ID")
		return
	}

	if err := a.meals.Delete(deviceID(c, ""), id); err != nil {
		handleMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func handleMealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMealNotFound):
		respondError(c, http.StatusNotFound, "餐次不存在")
	case errors.Is(err, service.ErrMealInvalidType):
		respondError(c, http.StatusBadRequest, "不支持的餐次类型")
	case errors.Is(err, service.ErrMealEmptyItems):
		respondError(c, http.StatusBadRequest, "餐次至少需要一个条目")
	default:
		respondError(c, http.StatusInternalServerError, "餐次操作失败")
	}
}
