package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/service"
)

type setProfilePayload struct {
	DeviceID      string  `json:"device_id"`
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
}

func profileToPayload(profile db.Profile) gin.H {
	return gin.H{
		"age":            profile.Age,
		"sex":            profile.Sex,
		"height_cm":      profile.HeightCm,
		"weight_kg":      profile.WeightKg,
		"activity_level": profile.ActivityLevel,
		"goal_type":      profile.GoalType,
		"updated_at":     profile.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetProfile 返回设备的身体档案
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get(deviceID(c, ""))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "档案不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取档案失败")
		return
	}
	c.JSON(http.StatusOK, profileToPayload(*profile))
}

// SetProfile 整体保存身体档案，所有字段必填
func (a *API) SetProfile(c *gin.Context) {
	var payload setProfilePayload
	if !bindJSON(c, &payload, "无效的档案数据") {
		return
	}

	profile, err := a.profiles.Upsert(deviceID(c, payload.DeviceID), service.ProfileInput{
		Age:           payload.Age,
		Sex:           payload.Sex,
		HeightCm:      payload.HeightCm,
		WeightKg:      payload.WeightKg,
		ActivityLevel: payload.ActivityLevel,
		GoalType:      payload.GoalType,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileInvalidInput) {
			respondError(c, http.StatusBadRequest, "档案字段不完整")
			return
		}
		respondError(c, http.StatusInternalServerError, "保存档案失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profileToPayload(*profile)})
}

// GetRecommendedTarget 返回基础代谢与建议热量目标，档案不完整时返回默认值
func (a *API) GetRecommendedTarget(c *gin.Context) {
	result := a.targets.Recommended(deviceID(c, ""))
	c.JSON(http.StatusOK, gin.H{
		"bmr":                result.BMR,
		"recommended_target": result.RecommendedTarget,
	})
}
