package main

import (
	"log"

	"laravel_to_go/config"
	"laravel_to_go/db"
	"laravel_to_go/middleware"
	"laravel_to_go/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	appConfig := config.LoadConfig()

	// 初始化数据库和Redis
	db.InitDB(appConfig)
	db.InitRedis(appConfig)
	// 运行数据库迁移，同步表结构变更
	db.RunMigrations()

	// 创建Gin引擎
	router := gin.Default()

	// 设置中间件
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware(appConfig))
	router.Use(middleware.ErrorHandlerMiddleware())

	// 设置静态文件服务
	router.Static("/static", "./staticfiles")
	router.Static("/media", appConfig.MediaDir)

	// 初始化路由
	routes.InitRoutes(router, appConfig)

	// 启动服务器
	log.Printf("Server starting on port %s\n", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
