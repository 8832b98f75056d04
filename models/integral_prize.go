package models

import (
	"time"
)

// 奖品关联类型，封闭集合：商品SKU、积分配置，其余一律视为未中奖槽位
const (
	ModelTypeGoodSku               = "good_sku"
	ModelTypeIntegralConfiguration = "integral_configuration"
	ModelTypeDefault               = "default"
)

// IntegralPrize 抽奖奖品模型
type IntegralPrize struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IntegralDrawID uint      `gorm:"column:integral_draw_id;index;not null" json:"integral_draw_id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null" json:"name"`        // 奖品名称
	ModelType      string    `gorm:"column:model_type;type:varchar(64);not null" json:"model_type"` // 关联类型
	ModelID        uint      `gorm:"column:model_id;type:int;not null;default:0" json:"model_id"`   // 关联资源ID
	Weight         int       `gorm:"column:weight;type:int;not null;default:0" json:"weight"`       // 抽中权重，全部为0时等概率
	Number         int       `gorm:"column:number;type:int;not null;default:0" json:"number"`       // 剩余数量，仅用于展示
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (IntegralPrize) TableName() string {
	return "integral_prize"
}

// IsWinning 判断奖品是否为可中奖槽位
func (p *IntegralPrize) IsWinning() bool {
	return p.ModelType == ModelTypeGoodSku || p.ModelType == ModelTypeIntegralConfiguration
}
