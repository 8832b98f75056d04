package msg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
	zh_translation "github.com/go-playground/validator/v10/translations/zh"
)

// 错误码，对应错误分类：参数错误、未授权、不存在、超过限制、存储失败
const (
	CodeOK             = 200
	CodeParameterWrong = 40000
	CodeUnauthorized   = 40100
	CodeNotFound       = 40400
	CodeLimitExceeded  = 42900
	CodeInternal       = 50000
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

var (
	trans     ut.Translator
	transOnce sync.Once
	transErr  error
)

func initTranslator(language string) error {
	//转换成go-playground的validator
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if ok {
		//创建翻译器
		zhT := zh.New()
		enT := en.New()

		//创建通用翻译器
		//第一个参数是备用语言，后面的是应当支持的语言
		uni := ut.New(enT, enT, zhT)

		//从通用翻译器中获取指定语言翻译器
		trans, ok = uni.GetTranslator(language)
		if !ok {
			return fmt.Errorf("not found translator %s", language)
		}

		//绑定到gin的验证器上，对binding的tag进行翻译
		switch language {
		case "zh":
			return zh_translation.RegisterDefaultTranslations(validate, trans)
		default:
			return en_translation.RegisterDefaultTranslations(validate, trans)
		}
	}

	return nil
}

// 去掉翻译结果key里的结构体前缀，只留字段名
func remove(errors map[string]string) map[string]string {
	result := map[string]string{}
	for key, value := range errors {
		result[key[strings.Index(key, ".")+1:]] = value
	}
	return result
}

// Success 成功响应
func Success(message string, data any) *Response {
	return &Response{
		Code:    CodeOK,
		Message: message,
		Data:    data,
	}
}

// Error 错误响应，{code, message}结构
func Error(code int, message string) *Response {
	return &Response{
		Code:    code,
		Message: message,
	}
}

// ValidationError 参数校验错误响应，绑定错误翻译为中文字段提示
func ValidationError(err error) *Response {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		// 翻译器注册一次即可，并发请求下也只初始化一次
		transOnce.Do(func() {
			transErr = initTranslator("zh")
		})
		if transErr == nil && trans != nil {
			translated := remove(verrs.Translate(trans))
			parts := make([]string, 0, len(translated))
			for _, v := range translated {
				parts = append(parts, v)
			}
			return &Response{
				Code:    CodeParameterWrong,
				Message: strings.Join(parts, "；"),
			}
		}
	}
	return &Response{
		Code:    CodeParameterWrong,
		Message: "请求参数错误: " + err.Error(),
	}
}
