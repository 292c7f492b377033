package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/db"
	"github.com/nutrilog/internal/service"
)

type addWaterPayload struct {
	DeviceID string `json:"device_id"`
	Date     string `json:"date"`
	VolumeMl int    `json:"volume_ml"`
}

type waterEntryPayload struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	VolumeMl  int    `json:"volume_ml"`
	CreatedAt string `json:"created_at"`
}

func waterToPayload(entry db.WaterEntry) waterEntryPayload {
	return waterEntryPayload{
		ID:        entry.ID,
		Date:      entry.Date,
		VolumeMl:  entry.VolumeMl,
		CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// AddWater 新增一条饮水记录
func (a *API) AddWater(c *gin.Context) {
	var payload addWaterPayload
	if !bindJSON(c, &payload, "无效的饮水数据") {
		return
	}

	entry, err := a.water.Add(deviceID(c, payload.DeviceID), payload.Date, payload.VolumeMl)
	if err != nil {
		handleWaterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": entry.ID})
}

// ListWater 返回饮水记录与总量。同时传 start 和 end 时按日期区间查询，
// 否则按单日查询，date 缺省为今天
func (a *API) ListWater(c *gin.Context) {
	var total int
	var entries []db.WaterEntry
	var err error

	start, end := c.Query("start"), c.Query("end")
	if start != "" && end != "" {
		entries, err = a.water.ListByRange(deviceID(c, ""), start, end)
		for _, entry := range entries {
			total += entry.VolumeMl
		}
	} else {
		total, entries, err = a.water.ListByDate(deviceID(c, ""), c.Query("date"))
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取饮水记录失败")
		return
	}

	items := make([]waterEntryPayload, 0, len(entries))
	for _, entry := range entries {
		items = append(items, waterToPayload(entry))
	}
	c.JSON(http.StatusOK, gin.H{"total_ml": total, "entries": items})
}

// DeleteWater 删除本设备的指定饮水记录
func (a *API) DeleteWater(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的记录ID")
		return
	}

	if err := a.water.Delete(deviceID(c, ""), id); err != nil {
		handleWaterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func handleWaterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWaterNotFound):
		respondError(c, http.StatusNotFound, "饮水记录不存在")
	case errors.Is(err, service.ErrWaterInvalidVolume):
		respondError(c, http.StatusBadRequest, "饮水量必须为正数")
	default:
		respondError(c, http.StatusInternalServerError, "饮水操作失败")
	}
}
