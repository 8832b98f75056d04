package models

import (
	"time"
)

// 管理员状态
const (
	AdminStateNormal = 1 // 正常
	AdminStateForbid = 2 // 禁用
)

// Admin 管理员模型
type Admin struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string      `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"` // 管理员账号
	RealName   string      `gorm:"column:real_name;type:varchar(100)" json:"real_name"`
	Email      string      `gorm:"column:email;type:varchar(255)" json:"email"`
	Cellphone  string      `gorm:"column:cellphone;type:varchar(20)" json:"cellphone"`
	Portrait   string      `gorm:"column:portrait;type:varchar(255)" json:"portrait"` // 头像文件相对路径
	Password   string      `gorm:"column:password;type:varchar(255);not null" json:"-"`
	State      int         `gorm:"column:state;type:int;not null;default:1" json:"state"`
	AuthGroups []AuthGroup `gorm:"many2many:admin_auth_group;" json:"auth_group"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Admin) TableName() string {
	return "admin"
}

// AuthGroup 权限组模型
type AuthGroup struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(100);not null" json:"title"` // 权限组名称
	Rules     string    `gorm:"column:rules;type:text" json:"rules"`                  // 权限规则，JSON格式字符串
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (AuthGroup) TableName() string {
	return "auth_group"
}

// AdminAuthGroup 管理员与权限组的关联表
type AdminAuthGroup struct {
	AdminID     uint `gorm:"column:admin_id;primaryKey" json:"admin_id"`
	AuthGroupID uint `gorm:"column:auth_group_id;primaryKey" json:"auth_group_id"`
}

// TableName 设置表名
func (AdminAuthGroup) TableName() string {
	return "admin_auth_group"
}

// AdminLog 管理员操作日志模型
type AdminLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   uint      `gorm:"column:admin_id;index;not null" json:"admin_id"`
	Name      string    `gorm:"column:name;type:varchar(100);index" json:"name"` // 操作管理员账号
	Action    string    `gorm:"column:action;type:varchar(100);not null" json:"action"`
	Detail    string    `gorm:"column:detail;type:json" json:"detail"` // 操作详情，JSON格式字符串
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 设置表名
func (AdminLog) TableName() string {
	return "admin_log"
}
