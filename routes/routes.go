package routes

import (
	"metric-forward/controllers/metrics"
	"metric-forward/utils/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Init 路由配置
func Init(app *gin.Engine) {
	app.Use(logger.GinLogger(), logger.GinRecovery(true))

	app.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	app.Any("/health", func(ctx *gin.Context) { //healthCheck
		ctx.String(http.StatusOK, "SUCCESS")
	})

	// 注册controller/metrics的route
	metrics.InitRoute(app)
}
