package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"laravel_to_go/config"
	"laravel_to_go/db"
	"laravel_to_go/models"
	"laravel_to_go/service/msg"
	"laravel_to_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// parseSubject 从请求中取出并解析JWT，返回令牌主体ID
func parseSubject(c *gin.Context, cfg config.Config) (uint, error) {
	var tokenString string

	// 尝试从Authorization头获取token
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		authParts := strings.SplitN(authHeader, " ", 2)
		if len(authParts) == 2 && authParts[0] == "Bearer" {
			tokenString = authParts[1]
		}
	}

	// 如果Authorization头中没有有效的token，尝试从URL参数access_token获取
	if tokenString == "" {
		tokenString = c.Query("access_token")
	}

	if tokenString == "" {
		return 0, fmt.Errorf("missing token")
	}

	token, err := utils.ParseToken(tokenString, cfg)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("subject not found in token")
	}

	var id uint
	if _, err := fmt.Sscanf(subject, "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject in token")
	}
	return id, nil
}

// UserAuthMiddleware 前台用户认证中间件，将用户ID写入请求上下文
func UserAuthMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseSubject(c, cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "请先登录"))
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// AdminAuthMiddleware 管理员认证中间件
// 校验令牌并加载管理员，管理员以请求上下文传递，不使用全局状态
func AdminAuthMiddleware(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, err := parseSubject(c, cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "请先登录"))
			c.Abort()
			return
		}

		var admin models.Admin
		if err := db.DB.First(&admin, adminID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "管理员不存在"))
			c.Abort()
			return
		}
		if admin.State != models.AdminStateNormal {
			c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "管理员已被禁用"))
			c.Abort()
			return
		}

		c.Set("admin", &admin)
		c.Next()
	}
}

// CurrentAdmin 从请求上下文取出当前管理员
func CurrentAdmin(c *gin.Context) *models.Admin {
	if v, ok := c.Get("admin"); ok {
		if admin, ok := v.(*models.Admin); ok {
			return admin
		}
	}
	return nil
}

// CORSMiddleware 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

var (
	// 全局访问日志器实例
	accessLogger *utils.Logger
	loggerOnce   sync.Once
)

// RequestLogMiddleware 请求日志中间件
func RequestLogMiddleware(cfg config.Config) gin.HandlerFunc {
	// 确保日志器只被初始化一次
	loggerOnce.Do(func() {
		var err error
		accessLogger, err = utils.NewLogger(cfg.LogDir, "access.log")
		if err != nil {
			fmt.Printf("初始化访问日志记录器失败: %v\n", err)
		}
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		// 记录请求信息和IP地址到文件
		if accessLogger != nil {
			if err := accessLogger.Access("IP: %s, 方法: %s, 路径: %s", clientIP, c.Request.Method, c.Request.URL.Path); err != nil {
				fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
			}
		} else {
			fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
		}

		c.Next()
	}
}

// ErrorHandlerMiddleware 错误处理中间件，兜底记录handler写入的错误
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				if accessLogger != nil {
					accessLogger.Error("路径: %s, 错误: %v", c.Request.URL.Path, e.Err)
				}
			}
			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "服务器内部错误"))
			}
		}
	}
}
