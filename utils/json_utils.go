package utils

import (
	"encoding/json"
	"fmt"
)

// MapToJSONString 将map转换为JSON字符串
func MapToJSONString(m map[string]interface{}) (string, error) {
	jsonData, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("map转换为JSON失败: %v", err)
	}
	return string(jsonData), nil
}

// JSONStringToMap 将JSON字符串转换为map
func JSONStringToMap(jsonStr string) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal([]byte(jsonStr), &result)
	if err != nil {
		return nil, fmt.Errorf("JSON转换为map失败: %v", err)
	}
	return result, nil
}
