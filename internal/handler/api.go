package handler

import (
	"github.com/nutrilog/internal/cache"
	"github.com/nutrilog/internal/service"
	"gorm.io/gorm"
)

// API 聚合各领域服务，供 HTTP 处理器共享
type API struct {
	db       *gorm.DB
	foods    *service.FoodService
	meals    *service.MealService
	water    *service.WaterService
	goals    *service.GoalService
	profiles *service.ProfileService
	targets  *service.TargetService
	reports  *service.ReportService
}

// NewAPI 构造处理器集合，周报与目标共用同一个 GoalService
func NewAPI(gdb *gorm.DB, c *cache.Cache) *API {
	goalService := service.NewGoalService(gdb)

	return &API{
		db:       gdb,
		foods:    service.NewFoodService(gdb, c),
		meals:    service.NewMealService(gdb),
		water:    service.NewWaterService(gdb),
		goals:    goalService,
		profiles: service.NewProfileService(gdb),
		targets:  service.NewTargetService(gdb),
		reports:  service.NewReportService(gdb, goalService),
	}
}

// DB 暴露底层 gorm 实例
func (a *API) DB() *gorm.DB {
	return a.db
}
