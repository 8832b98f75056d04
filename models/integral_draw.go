package models

import (
	"time"
)

// IntegralDraw 积分抽奖活动模型
type IntegralDraw struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`     // 活动名称
	Tries     int             `gorm:"column:tries;type:int;not null;default:0" json:"tries"`  // 每人每日抽奖上限，0表示不限次数
	StartTime time.Time       `gorm:"column:start_time;type:datetime;not null" json:"start_time"` // 活动开始时间
	EndTime   time.Time       `gorm:"column:end_time;type:datetime;not null" json:"end_time"`     // 活动结束时间
	Prizes    []IntegralPrize `gorm:"foreignKey:IntegralDrawID" json:"integral_prize"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (IntegralDraw) TableName() string {
	return "integral_draw"
}

// IsActive 判断活动在指定时间是否生效
func (d *IntegralDraw) IsActive(now time.Time) bool {
	return !now.Before(d.StartTime) && !now.After(d.EndTime)
}
