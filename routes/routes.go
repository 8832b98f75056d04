package routes

import (
	"net/http"

	"laravel_to_go/config"
	"laravel_to_go/service/msg"

	"github.com/gin-gonic/gin"
)

// InitRoutes 注册所有路由
func InitRoutes(router *gin.Engine, cfg config.Config) {
	InitIntegralDrawRoutes(router, cfg)
	InitGoodRoutes(router, cfg)
	InitAdminRoutes(router, cfg)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "页面不存在"))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, msg.Error(msg.CodeParameterWrong, "请求方法不允许"))
	})
}
