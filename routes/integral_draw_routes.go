package routes

import (
	"laravel_to_go/config"
	"laravel_to_go/controllers"
	"laravel_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitIntegralDrawRoutes 注册积分抽奖相关路由
func InitIntegralDrawRoutes(router *gin.Engine, cfg config.Config) {
	controller := controllers.NewIntegralDrawController(cfg)

	// 用户端接口，需要用户登录
	drawGroup := router.Group("/")
	drawGroup.Use(middleware.UserAuthMiddleware(cfg))
	{
		drawGroup.GET("/integralDraw", controller.GetList)
		drawGroup.GET("/integralDraw/:id", controller.GetDetail)
		drawGroup.GET("/integralWinning/:id", controller.Winning)
	}

	// 管理端导出接口，需要管理员登录
	exportGroup := router.Group("/admin")
	exportGroup.Use(middleware.AdminAuthMiddleware(cfg))
	{
		exportGroup.GET("/integralDraw/export/:id", controller.Export)
	}
}
