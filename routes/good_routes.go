package routes

import (
	"laravel_to_go/config"
	"laravel_to_go/controllers"
	"laravel_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitGoodRoutes 注册商品管理相关路由
func InitGoodRoutes(router *gin.Engine, cfg config.Config) {
	controller := &controllers.GoodController{}

	goodGroup := router.Group("/good")
	goodGroup.Use(middleware.AdminAuthMiddleware(cfg))
	{
		goodGroup.GET("", controller.List)
		goodGroup.POST("", controller.Create)
		goodGroup.GET("/:id", controller.Details)
		goodGroup.POST("/:id", controller.Edit)
		goodGroup.POST("/destroy/:id", controller.Destroy)
		goodGroup.POST("/state/:id", controller.State)
		goodGroup.GET("/specification/:id", controller.Specification)
	}
}
