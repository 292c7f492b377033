package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nutrilog/internal/handler"
	"github.com/nutrilog/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, corsOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "nutrilog API 运行中")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/foods", api.ListFoods)
		apiGroup.GET("/foods/:id", api.GetFood)
		apiGroup.POST("/foods", api.CreateFood)
		apiGroup.POST("/foods/convert", api.ConvertCalories)

		apiGroup.GET("/meals", api.ListMeals)
		apiGroup.POST("/meals", api.CreateMeal)
		apiGroup.DELETE("/meals/:id", api.DeleteMeal)

		apiGroup.GET("/water", api.ListWater)
		apiGroup.POST("/water", api.AddWater)
		apiGroup.DELETE("/water/:id", api.DeleteWater)

		apiGroup.GET("/reports/weekly", api.GetWeeklyReport)

		apiGroup.GET("/goals", api.GetGoals)
		apiGroup.POST("/goals", api.SetGoals)
		apiGroup.GET("/streaks", api.GetStreaks)
		apiGroup.POST("/streaks", api.SetStreaks)

		apiGroup.GET("/profile", api.GetProfile)
		apiGroup.POST("/profile", api.SetProfile)
		apiGroup.GET("/profile/target", api.GetRecommendedTarget)
	}

	return r
}
