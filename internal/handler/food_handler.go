package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/service"
)

type foodPayload struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	CaloriesPer100 float64 `json:"calories_per_100"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
}

type createFoodPayload struct {
	Name           string  `json:"name"`
	CaloriesPer100 float64 `json:"calories_per_100"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
}

type convertPayload struct {
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func foodToPayload(food db.Food) foodPayload {
	return foodPayload{
		ID:             food.ID,
		Name:           food.Name,
		CaloriesPer100: food.CaloriesPer100,
		Category:       food.Category,
		Unit:           food.Unit,
	}
}

// ListFoods 返回食物列表，支持 search 子串搜索
func (a *API) ListFoods(c *gin.Context) {
	foods, err := a.foods.List(c.Query("search"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取食物列表失败")
		return
	}

	items := make([]foodPayload, 0, len(foods))
	for _, food := range foods {
		items = append(items, foodToPayload(food))
	}
	c.JSON(http.StatusOK, items)
}

// GetFood 返回单个食物详情
func (a *API) GetFood(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的食物ID")
		return
	}

	food, err := a.foods.Get(id)
	if err != nil {
		handleFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, foodToPayload(*food))
}

// CreateFood 新增食物，名称重复时拒绝
func (a *API) CreateFood(c *gin.Context) {
	var payload createFoodPayload
	if !bindJSON(c, &payload, "无效的食物数据") {
		return
	}

	food, err := a.foods.Create(service.FoodInput{
		Name:           payload.Name,
		CaloriesPer100: payload.CaloriesPer100,
		Category:       payload.Category,
		Unit:           payload.Unit,
	})
	if err != nil {
		handleFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": food.ID})
}

// ConvertCalories 按食物热量密度换算指定数量、单位的热量
func (a *API) ConvertCalories(c *gin.Context) {
	var payload convertPayload
	if !bindJSON(c, &payload, "无效的换算请求") {
		return
	}

	calories, err := a.foods.ConvertCalories(payload.FoodID, payload.Quantity, payload.Unit)
	if err != nil {
		handleFoodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calories": calories})
}

func handleFoodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFoodNotFound):
		respondError(c, http.StatusNotFound, "食物不存在")
	case errors.Is(err, service.ErrFoodExists):
		respondError(c, http.StatusBadRequest, "食物已存在")
	case errors.Is(err, service.ErrFoodInvalidInput):
		respondError(c, http.StatusBadRequest, "食物数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, "食物操作失败")
	}
}
