package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	deviceIDHeader  = "X-Device-ID"
	defaultDeviceID = "default"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// deviceID 按 请求头 > 请求体 > 查询参数 的顺序提取设备标识，
// 全部缺失时回退到共享的 default 分区。
func deviceID(c *gin.Context, bodyID string) string {
	if id := strings.TrimSpace(c.GetHeader(deviceIDHeader)); id != "" {
		return id
	}
	if id := strings.TrimSpace(bodyID); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Query("deviceId")); id != "" {
		return id
	}
	return defaultDeviceID
}
