package message

import (
	"fmt"
	"log"

	"laravel_to_go/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v5/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// CreateClient 创建短信客户端，凭证来自配置
func CreateClient(cfg config.SMSConfig) (*dysmsapi20170525.Client, error) {
	clientConfig := &openapi.Config{
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	}
	// Endpoint 请参考 https://api.aliyun.com/product/Dysmsapi
	clientConfig.Endpoint = tea.String("dysmsapi.aliyuncs.com")
	return dysmsapi20170525.NewClient(clientConfig)
}

// SendWinningSms 发送中奖通知短信
func SendWinningSms(cfg config.SMSConfig, phoneNumber string, prizeName string) (*string, error) {
	client, err := CreateClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("创建客户端失败: %v", err)
	}

	sendSmsRequest := &dysmsapi20170525.SendSmsRequest{
		PhoneNumbers:  tea.String(phoneNumber),
		SignName:      tea.String(cfg.SignName),
		TemplateCode:  tea.String(cfg.TemplateCode),
		TemplateParam: tea.String(fmt.Sprintf("{\"prize\":\"%s\"}", prizeName)),
	}
	runtime := &util.RuntimeOptions{}

	resp, err := client.SendSmsWithOptions(sendSmsRequest, runtime)
	if err != nil {
		// 处理错误
		var sdkError = &tea.SDKError{}
		if _t, ok := err.(*tea.SDKError); ok {
			sdkError = _t
		} else {
			sdkError.Message = tea.String(err.Error())
		}
		return nil, fmt.Errorf("发送短信失败: %s", tea.StringValue(sdkError.Message))
	}

	return util.ToJSONString(resp), nil
}

// NotifyWinner 中奖后异步通知，失败仅记录日志，不影响抽奖结果返回
func NotifyWinner(cfg config.SMSConfig, phoneNumber string, prizeName string) {
	if !cfg.Enabled || phoneNumber == "" {
		return
	}
	go func() {
		if _, err := SendWinningSms(cfg, phoneNumber, prizeName); err != nil {
			log.Printf("中奖通知短信发送失败: %v", err)
		}
	}()
}
