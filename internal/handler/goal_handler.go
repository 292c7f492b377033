package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/service"
)

type setGoalsPayload struct {
	DeviceID      string `json:"device_id"`
	CalorieTarget *int   `json:"calorie_target"`
	WaterTargetMl *int   `json:"water_target_ml"`
}

type setStreaksPayload struct {
	DeviceID      string `json:"device_id"`
	CalorieStreak *int   `json:"calorie_streak"`
	WaterStreak   *int   `json:"water_streak"`
	BothStreak    *int   `json:"both_streak"`
}

func goalsToPayload(goals db.Goals) gin.H {
	return gin.H{
		"calorie_target":  goals.CalorieTarget,
		"water_target_ml": goals.WaterTargetMl,
	}
}

func streaksToPayload(streaks db.Streaks) gin.H {
	return gin.H{
		"calorie_streak": streaks.CalorieStreak,
		"water_streak":   streaks.WaterStreak,
		"both_streak":    streaks.BothStreak,
	}
}

// GetGoals 返回设备的每日目标，首次访问按默认值创建
func (a *API) GetGoals(c *gin.Context) {
	goals, err := a.goals.Get(deviceID(c, ""))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取目标失败")
		return
	}
	c.JSON(http.StatusOK, goalsToPayload(*goals))
}

// SetGoals 部分更新每日目标，未传字段保持原值
func (a *API) SetGoals(c *gin.Context) {
	var payload setGoalsPayload
	if !bindJSON(c, &payload, "无效的目标数据") {
		return
	}

	goals, err := a.goals.Update(deviceID(c, payload.DeviceID), service.GoalsInput{
		CalorieTarget: payload.CalorieTarget,
		WaterTargetMl: payload.WaterTargetMl,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "更新目标失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "goals": goalsToPayload(*goals)})
}

// GetStreaks 返回设备的连胜计数
func (a *API) GetStreaks(c *gin.Context) {
	streaks, err := a.goals.GetStreaks(deviceID(c, ""))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取连胜计数失败")
		return
	}
	c.JSON(http.StatusOK, streaksToPayload(*streaks))
}

// SetStreaks 部分更新连胜计数，未传字段保持原值
func (a *API) SetStreaks(c *gin.Context) {
	var payload setStreaksPayload
	if !bindJSON(c, &payload, "无效的连胜数据") {
		return
	}

	streaks, err := a.goals.UpdateStreaks(deviceID(c, payload.DeviceID), service.StreaksInput{
		CalorieStreak: payload.CalorieStreak,
		WaterStreak:   payload.WaterStreak,
		BothStreak:    payload.BothStreak,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "更新连胜计数失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "streaks": streaksToPayload(*streaks)})
}
