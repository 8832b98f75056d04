package models

import (
	"time"
)

// IntegralRecord 抽奖记录模型，一次抽奖落一条记录，落库后不再修改
type IntegralRecord struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	IntegralDrawID  uint      `gorm:"column:integral_draw_id;index;not null" json:"integral_draw_id"`
	IntegralPrizeID *uint     `gorm:"column:integral_prize_id" json:"integral_prize_id"` // NULL表示未中奖
	DrawnAt         time.Time `gorm:"column:drawn_at;type:datetime;not null;index" json:"drawn_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 设置表名
func (IntegralRecord) TableName() string {
	return "integral_record"
}
