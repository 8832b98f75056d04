package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"laravel_to_go/config"

	"github.com/golang-jwt/jwt/v4"
)

func testConfig() config.Config {
	return config.Config{
		JWTConfig: config.JWTConfig{
			SecretKey:       "test-secret-key",
			AccessTokenTTL:  2,
			RefreshTokenTTL: 72,
		},
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testConfig()

	t.Run("生成并解析访问令牌", func(t *testing.T) {
		accessToken, refreshToken, err := GenerateTokens(42, cfg)
		if err != nil {
			t.Fatalf("生成令牌失败: %v", err)
		}
		if accessToken == "" || refreshToken == "" {
			t.Fatal("令牌不能为空")
		}

		token, err := ParseToken(accessToken, cfg)
		if err != nil {
			t.Fatalf("解析令牌失败: %v", err)
		}
		if !token.Valid {
			t.Fatal("令牌应该有效")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			t.Fatal("令牌声明类型错误")
		}
		if sub, _ := claims["sub"].(string); sub != "42" {
			t.Errorf("期望subject为42，实际为%s", sub)
		}
	})

	t.Run("密钥错误时解析失败", func(t *testing.T) {
		accessToken, _, err := GenerateTokens(1, cfg)
		if err != nil {
			t.Fatalf("生成令牌失败: %v", err)
		}

		wrongCfg := cfg
		wrongCfg.JWTConfig.SecretKey = "another-secret"
		if _, err := ParseToken(accessToken, wrongCfg); err == nil {
			t.Error("密钥不匹配时应该解析失败")
		}
	})

	t.Run("刷新令牌换取新的访问令牌", func(t *testing.T) {
		_, refreshToken, err := GenerateTokens(7, cfg)
		if err != nil {
			t.Fatalf("生成令牌失败: %v", err)
		}

		newAccessToken, err := RefreshAccessToken(refreshToken, cfg)
		if err != nil {
			t.Fatalf("刷新令牌失败: %v", err)
		}

		token, err := ParseToken(newAccessToken, cfg)
		if err != nil {
			t.Fatalf("解析新令牌失败: %v", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if sub, _ := claims["sub"].(string); sub != "7" {
			t.Errorf("期望subject为7，实际为%s", sub)
		}
	})

	t.Run("无效字符串刷新失败", func(t *testing.T) {
		if _, err := RefreshAccessToken("not-a-token", cfg); err == nil {
			t.Error("无效的刷新令牌应该返回错误")
		}
	})

	t.Run("令牌主体非数字时拒绝刷新", func(t *testing.T) {
		signed := signWithSubject(t, cfg, "not-a-number")
		if _, err := RefreshAccessToken(signed, cfg); err == nil {
			t.Error("主体非数字的刷新令牌应该被拒绝")
		}
	})

	t.Run("令牌主体为0时拒绝刷新", func(t *testing.T) {
		signed := signWithSubject(t, cfg, "0")
		if _, err := RefreshAccessToken(signed, cfg); err == nil {
			t.Error("主体为0的刷新令牌应该被拒绝")
		}
	})
}

// signWithSubject 用配置密钥签发指定主体的令牌
func signWithSubject(t *testing.T, cfg config.Config, subject string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Subject:   subject,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTConfig.SecretKey))
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return signed
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset int
		wantLimit  int
	}{
		{"第一页", 1, 10, 0, 10},
		{"第三页", 3, 20, 40, 20},
		{"页码为零时回退到第一页", 0, 10, 0, 10},
		{"页大小为零时使用默认值", 2, 0, 10, 10},
		{"负数参数全部回退", -1, -5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Pagination(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("Pagination(%d, %d) = (%d, %d)，期望(%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	t.Run("保留原始文件名", func(t *testing.T) {
		name := GenerateUniqueFilename("avatar.png")
		if !strings.HasSuffix(name, "_avatar.png") {
			t.Errorf("生成的文件名%s应该以原始文件名结尾", name)
		}
	})

	t.Run("多次生成不重复", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			name := GenerateUniqueFilename("img.jpg")
			if seen[name] {
				t.Fatalf("生成了重复的文件名: %s", name)
			}
			seen[name] = true
		}
	})
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 6, 15, 9, 30, 5, 0, time.UTC)
	got := FormatDateTime(ts)
	want := "2024-06-15 09:30:05"
	if got != want {
		t.Errorf("FormatDateTime() = %s，期望%s", got, want)
	}
}

func TestMapToJSONStringRoundTrip(t *testing.T) {
	detail := map[string]interface{}{
		"id":   float64(3),
		"name": "admin",
	}
	jsonStr, err := MapToJSONString(detail)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	parsed, err := JSONStringToMap(jsonStr)
	if err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if fmt.Sprintf("%v", parsed["name"]) != "admin" {
		t.Errorf("期望name为admin，实际为%v", parsed["name"])
	}
}
