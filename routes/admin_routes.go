package routes

import (
	"laravel_to_go/config"
	"laravel_to_go/controllers"
	"laravel_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitAdminRoutes 注册管理员相关路由
func InitAdminRoutes(router *gin.Engine, cfg config.Config) {
	controller := controllers.NewAdminController(cfg)

	// 登录和刷新令牌不需要鉴权
	openGroup := router.Group("/admin")
	{
		openGroup.POST("/login", controller.Login)
		openGroup.POST("/refreshToken", controller.RefreshToken)
	}

	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware(cfg))
	{
		adminGroup.GET("", controller.List)
		adminGroup.POST("", controller.Create)
		adminGroup.POST("/:id", controller.Edit)
		adminGroup.POST("/password/:id", controller.Password)
		adminGroup.POST("/destroy/:id", controller.Destroy)
		adminGroup.GET("/getAuthGroupList", controller.AuthGroupList)
		adminGroup.GET("/log", controller.Log)
		adminGroup.POST("/portrait", controller.UploadPortrait)
	}
}
