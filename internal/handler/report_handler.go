package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/service"
)

type daySummaryPayload struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	TotalWaterMl  int     `json:"total_water_ml"`
	MealCount     int     `json:"meal_count"`
	MetCalorie    bool    `json:"met_calorie"`
	MetWater      bool    `json:"met_water"`
	MetBoth       bool    `json:"met_both"`
}

// GetWeeklyReport 返回本周（周一至周日）的 7 天汇总与目标达成情况
func (a *API) GetWeeklyReport(c *gin.Context) {
	summaries, err := a.reports.Weekly(deviceID(c, ""), time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取周报失败")
		return
	}

	days := make([]daySummaryPayload, 0, len(summaries))
	for _, day := range summaries {
		days = append(days, summaryToPayload(day))
	}
	c.JSON(http.StatusOK, days)
}

func summaryToPayload(day service.DaySummary) daySummaryPayload {
	return daySummaryPayload{
		Date:          day.Date,
		TotalCalories: day.TotalCalories,
		TotalWaterMl:  day.TotalWaterMl,
		MealCount:     day.MealCount,
		MetCalorie:    day.MetCalorie,
		MetWater:      day.MetWater,
		MetBoth:       day.MetBoth,
	}
}
