package models

import (
	"time"
)

// IntegralConfiguration 积分配置模型，奖品关联积分时展示固定积分图标
type IntegralConfiguration struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"` // 配置名称
	Integral  int       `gorm:"column:integral;type:int;not null" json:"integral"`  // 积分值
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (IntegralConfiguration) TableName() string {
	return "integral_configuration"
}
