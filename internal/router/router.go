package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/handler"
	"github.com/sirupsen/logrus"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	r.GET("/healthz", api.Health)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/document", api.ExportDocument)

		apiGroup.GET("/foods", api.ListFoods)
		apiGroup.POST("/foods", api.CreateFood)
		apiGroup.DELETE("/foods/:id", api.DeleteFood)

		apiGroup.GET("/meal-presets", api.ListMealPresets)
		apiGroup.POST("/meal-presets", api.CreateMealPreset)
		apiGroup.GET("/meal-presets/:id", api.GetMealPreset)
		apiGroup.DELETE("/meal-presets/:id", api.DeleteMealPreset)
		apiGroup.POST("/meal-presets/:id/items", api.AddMealPresetItem)
		apiGroup.DELETE("/meal-presets/:id/items/:itemId", api.RemoveMealPresetItem)
		apiGroup.POST("/meal-presets/:id/apply", api.ApplyMealPreset)

		apiGroup.GET("/days/today", api.GetToday)
		apiGroup.GET("/days/:date", api.GetDay)
		apiGroup.GET("/history", api.GetHistory)

		apiGroup.POST("/entries/food", api.LogFoodEntry)
		apiGroup.POST("/entries/quick", api.LogQuickEntry)
		apiGroup.DELETE("/entries/:id", api.DeleteEntry)

		apiGroup.GET("/settings", api.GetSettings)
		apiGroup.PUT("/settings", api.UpdateSettings)
		apiGroup.POST("/reset", api.ResetAll)

		apiGroup.GET("/barcode/:code", api.LookupBarcode)
		apiGroup.POST("/barcode/:code/import", api.ImportBarcode)
	}

	return r
}

// requestLogger 记录每个请求的方法、路径、状态与耗时，handler 通过 c.Error 附加的错误一并输出
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}
