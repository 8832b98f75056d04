package models

import (
	"time"
)

// User 前台用户模型
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Cellphone string    `gorm:"column:cellphone;type:varchar(20);index" json:"cellphone"`
	Integral  int       `gorm:"column:integral;type:int;not null;default:0" json:"integral"` // 积分余额
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "user"
}
