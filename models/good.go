package models

import (
	"time"
)

// 商品状态
const (
	GoodStateOnline  = 1 // 上架
	GoodStateOffline = 2 // 下架
)

// Good 商品模型
type Good struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"` // 商品名称
	Img       string    `gorm:"column:img;type:varchar(255)" json:"img"`            // 主图
	Price     float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Content   string    `gorm:"column:content;type:text" json:"content"` // 商品详情
	State     int       `gorm:"column:state;type:int;not null;default:1" json:"state"`
	Skus      []GoodSku `gorm:"foreignKey:GoodID" json:"good_sku"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Good) TableName() string {
	return "good"
}

// GoodSku 商品SKU模型，奖品关联商品时取SKU自身的图片
type GoodSku struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GoodID     uint      `gorm:"column:good_id;index;not null" json:"good_id"`
	Img        string    `gorm:"column:img;type:varchar(255)" json:"img"` // SKU图片
	Price      float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Inventory  int       `gorm:"column:inventory;type:int;not null;default:0" json:"inventory"` // 库存
	ProductSku string    `gorm:"column:product_sku;type:json" json:"product_sku"`               // 规格组合，JSON格式字符串
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (GoodSku) TableName() string {
	return "good_sku"
}
