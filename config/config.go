package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port      string
	MediaDir  string
	LogDir    string
	DBConfig  DBConfig
	Redis     RedisConfig
	JWTConfig JWTConfig
	SMSConfig SMSConfig
}

// DBConfig 数据库配置
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // 小时
	RefreshTokenTTL int // 小时
}

// SMSConfig 阿里云短信配置
type SMSConfig struct {
	Enabled         bool
	AccessKeyID     string
	AccessKeySecret string
	SignName        string
	TemplateCode    string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() Config {
	return Config{
		Port:     getEnv("PORT", "8080"),
		MediaDir: getEnv("MEDIA_DIR", "./media"),
		LogDir:   getEnv("LOG_DIR", "./logs"),
		DBConfig: DBConfig{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "integral_mall"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWTConfig: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "integral-mall-secret"),
			AccessTokenTTL:  getEnvInt("JWT_ACCESS_TTL", 2),
			RefreshTokenTTL: getEnvInt("JWT_REFRESH_TTL", 24),
		},
		SMSConfig: SMSConfig{
			Enabled:         getEnv("SMS_ENABLED", "") == "true",
			AccessKeyID:     getEnv("SMS_ACCESS_KEY_ID", ""),
			AccessKeySecret: getEnv("SMS_ACCESS_KEY_SECRET", ""),
			SignName:        getEnv("SMS_SIGN_NAME", ""),
			TemplateCode:    getEnv("SMS_TEMPLATE_CODE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
