package msg

import (
	"errors"
	"sync"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Name     string `binding:"required"`
	Password string `binding:"required,min=6"`
}

func TestSuccessAndError(t *testing.T) {
	t.Run("成功响应携带数据", func(t *testing.T) {
		resp := Success("查询成功", map[string]interface{}{"id": 1})
		if resp.Code != CodeOK {
			t.Errorf("期望code为%d，实际为%d", CodeOK, resp.Code)
		}
		if resp.Message != "查询成功" || resp.Data == nil {
			t.Errorf("成功响应应携带消息和数据: %+v", resp)
		}
	})

	t.Run("错误响应只有code和message", func(t *testing.T) {
		resp := Error(CodeNotFound, "抽奖活动不存在")
		if resp.Code != CodeNotFound || resp.Message != "抽奖活动不存在" {
			t.Errorf("错误响应结构不正确: %+v", resp)
		}
		if resp.Data != nil {
			t.Errorf("错误响应不应携带数据: %+v", resp.Data)
		}
	})
}

func TestValidationError(t *testing.T) {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("获取gin校验器失败")
	}
	verr := validate.Struct(loginForm{})
	if verr == nil {
		t.Fatal("空表单应产生校验错误")
	}

	t.Run("校验错误翻译为中文提示", func(t *testing.T) {
		resp := ValidationError(verr)
		if resp.Code != CodeParameterWrong {
			t.Errorf("期望code为%d，实际为%d", CodeParameterWrong, resp.Code)
		}
		if resp.Message == "" {
			t.Error("校验错误提示不应为空")
		}
	})

	t.Run("并发调用结果一致", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp := ValidationError(verr)
				if resp.Code != CodeParameterWrong || resp.Message == "" {
					t.Errorf("并发下校验错误响应不正确: %+v", resp)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("非校验错误返回通用参数错误", func(t *testing.T) {
		resp := ValidationError(errors.New("unexpected EOF"))
		if resp.Code != CodeParameterWrong {
			t.Errorf("期望code为%d，实际为%d", CodeParameterWrong, resp.Code)
		}
		if resp.Message == "" {
			t.Error("通用参数错误提示不应为空")
		}
	})
}
