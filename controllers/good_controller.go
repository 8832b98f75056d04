package controllers

import (
	"log"
	"net/http"
	"strconv"

	"laravel_to_go/db"
	"laravel_to_go/models"
	"laravel_to_go/service/msg"
	"laravel_to_go/utils"

	"github.com/gin-gonic/gin"
)

// GoodController 商品控制器
type GoodController struct{}

// CreateGoodRequest 创建商品请求结构体
type CreateGoodRequest struct {
	Name    string         `json:"name" binding:"required"`
	Img     string         `json:"img"`
	Price   float64        `json:"price" binding:"required"`
	Content string         `json:"content"`
	Skus    []GoodSkuInput `json:"good_sku"`
}

// GoodSkuInput SKU输入结构体
type GoodSkuInput struct {
	Img        string  `json:"img"`
	Price      float64 `json:"price"`
	Inventory  int     `json:"inventory"`
	ProductSku string  `json:"product_sku"`
}

// UpdateGoodRequest 修改商品请求结构体
type UpdateGoodRequest struct {
	Name    string  `json:"name"`
	Img     string  `json:"img"`
	Price   float64 `json:"price"`
	Content string  `json:"content"`
}

// GoodStateRequest 商品上下架请求结构体
type GoodStateRequest struct {
	State int `json:"state" binding:"required"`
}

// List 商品列表，支持分页和名称筛选
func (gc *GoodController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, limit := utils.Pagination(page, limit)

	query := db.DB.Model(&models.Good{})
	if title := c.Query("title"); title != "" {
		query = query.Where("name LIKE ?", "%"+title+"%")
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("统计商品数量失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询商品失败"))
		return
	}

	var goods []models.Good
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&goods).Error; err != nil {
		log.Printf("查询商品列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询商品失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询商品成功", gin.H{
		"total": total,
		"data":  goods,
	}))
}

// Create 创建商品及其SKU
func (gc *GoodController) Create(c *gin.Context) {
	var request CreateGoodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	good := models.Good{
		Name:    request.Name,
		Img:     request.Img,
		Price:   request.Price,
		Content: request.Content,
		State:   models.GoodStateOnline,
	}

	// 商品和SKU在同一事务中创建
	tx := db.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "事务开始失败"))
		return
	}
	if err := tx.Create(&good).Error; err != nil {
		tx.Rollback()
		log.Printf("创建商品失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建商品失败"))
		return
	}
	for _, skuInput := range request.Skus {
		sku := models.GoodSku{
			GoodID:     good.ID,
			Img:        skuInput.Img,
			Price:      skuInput.Price,
			Inventory:  skuInput.Inventory,
			ProductSku: skuInput.ProductSku,
		}
		if err := tx.Create(&sku).Error; err != nil {
			tx.Rollback()
			log.Printf("创建商品SKU失败: %v", err)
			c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建商品SKU失败"))
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建商品失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("添加成功", good))
}

// Edit 修改商品信息
func (gc *GoodController) Edit(c *gin.Context) {
	id := c.Param("id")
	var good models.Good
	if err := db.DB.First(&good, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "商品不存在"))
		return
	}

	var request UpdateGoodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	if request.Name != "" {
		good.Name = request.Name
	}
	if request.Img != "" {
		good.Img = request.Img
	}
	if request.Price > 0 {
		good.Price = request.Price
	}
	if request.Content != "" {
		good.Content = request.Content
	}

	if err := db.DB.Save(&good).Error; err != nil {
		log.Printf("修改商品失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改商品失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("修改成功", good))
}

// Destroy 删除商品及其SKU
func (gc *GoodController) Destroy(c *gin.Context) {
	id := c.Param("id")
	var good models.Good
	if err := db.DB.First(&good, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "商品不存在"))
		return
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "事务开始失败"))
		return
	}
	if err := tx.Where("good_id = ?", good.ID).Delete(&models.GoodSku{}).Error; err != nil {
		tx.Rollback()
		log.Printf("删除商品SKU失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除商品失败"))
		return
	}
	if err := tx.Delete(&good).Error; err != nil {
		tx.Rollback()
		log.Printf("删除商品失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除商品失败"))
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除商品失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("删除成功", nil))
}

// Details 商品详情，附带SKU列表
func (gc *GoodController) Details(c *gin.Context) {
	id := c.Param("id")
	var good models.Good
	if err := db.DB.Preload("Skus").First(&good, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "商品不存在"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询商品成功", good))
}

// State 商品上下架
func (gc *GoodController) State(c *gin.Context) {
	id := c.Param("id")
	var good models.Good
	if err := db.DB.First(&good, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "商品不存在"))
		return
	}

	var request GoodStateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}
	if request.State != models.GoodStateOnline && request.State != models.GoodStateOffline {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "无效的商品状态"))
		return
	}

	good.State = request.State
	if err := db.DB.Save(&good).Error; err != nil {
		log.Printf("修改商品状态失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改商品状态失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("修改成功", good))
}

// Specification 查询商品的SKU规格列表
func (gc *GoodController) Specification(c *gin.Context) {
	id := c.Param("id")
	var skus []models.GoodSku
	if err := db.DB.Where("good_id = ?", id).Find(&skus).Error; err != nil {
		log.Printf("查询商品SKU失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询商品SKU失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询成功", skus))
}
