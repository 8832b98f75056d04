package controllers

import (
	"log"
	"net/http"
	"strconv"

	"laravel_to_go/config"
	"laravel_to_go/db"
	"laravel_to_go/middleware"
	"laravel_to_go/models"
	"laravel_to_go/service/msg"
	"laravel_to_go/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminController 管理员控制器
type AdminController struct {
	Cfg config.Config
}

// NewAdminController 创建管理员控制器
func NewAdminController(cfg config.Config) *AdminController {
	return &AdminController{Cfg: cfg}
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 刷新令牌请求结构体
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateAdminRequest 创建管理员请求结构体
type CreateAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	RealName   string `json:"real_name"`
	Email      string `json:"email" binding:"omitempty,email"`
	Cellphone  string `json:"cellphone"`
	Portrait   string `json:"portrait"`
	Password   string `json:"password" binding:"required,min=6"`
	AuthGroups []uint `json:"auth_group"`
}

// UpdateAdminRequest 修改管理员请求结构体
type UpdateAdminRequest struct {
	RealName   string `json:"real_name"`
	Email      string `json:"email" binding:"omitempty,email"`
	Cellphone  string `json:"cellphone"`
	Portrait   string `json:"portrait"`
	State      int    `json:"state"`
	AuthGroups []uint `json:"auth_group"`
}

// PasswordRequest 修改密码请求结构体
type PasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// writeAdminLog 记录管理员操作日志，失败只记日志不阻断请求
func writeAdminLog(c *gin.Context, action string, detail map[string]interface{}) {
	operator := middleware.CurrentAdmin(c)
	if operator == nil {
		return
	}
	detailJSON, err := utils.MapToJSONString(detail)
	if err != nil {
		detailJSON = "{}"
	}
	entry := models.AdminLog{
		AdminID: operator.ID,
		Name:    operator.Name,
		Action:  action,
		Detail:  detailJSON,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		log.Printf("记录管理员操作日志失败: %v", err)
	}
}

// Login 管理员登录
func (ac *AdminController) Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	var admin models.Admin
	if err := db.DB.Where("name = ?", request.Name).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "账号或密码错误"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "账号或密码错误"))
		return
	}
	if admin.State != models.AdminStateNormal {
		c.JSON(http.StatusForbidden, msg.Error(msg.CodeUnauthorized, "账号已被禁用"))
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(admin.ID, ac.Cfg)
	if err != nil {
		log.Printf("生成令牌失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "登录失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("登录成功", gin.H{
		"id":            admin.ID,
		"name":          admin.Name,
		"portrait":      admin.Portrait,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}))
}

// RefreshToken 刷新访问令牌
func (ac *AdminController) RefreshToken(c *gin.Context) {
	var request RefreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	accessToken, err := utils.RefreshAccessToken(request.RefreshToken, ac.Cfg)
	if err != nil {
		c.JSON(http.StatusUnauthorized, msg.Error(msg.CodeUnauthorized, "刷新令牌无效或已过期"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("刷新成功", gin.H{
		"access_token": accessToken,
	}))
}

// List 管理员列表，支持分页、状态和账号筛选
func (ac *AdminController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, limit := utils.Pagination(page, limit)

	query := db.DB.Model(&models.Admin{})
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("统计管理员数量失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询管理员失败"))
		return
	}

	var admins []models.Admin
	if err := query.Preload("AuthGroups").Order("id DESC").Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		log.Printf("查询管理员列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询管理员失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询成功", gin.H{
		"total": total,
		"data":  admins,
	}))
}

// Create 创建管理员并关联权限组
func (ac *AdminController) Create(c *gin.Context) {
	var request CreateAdminRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	var count int64
	db.DB.Model(&models.Admin{}).Where("name = ?", request.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "该账号已存在"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建管理员失败"))
		return
	}

	admin := models.Admin{
		Name:      request.Name,
		RealName:  request.RealName,
		Email:     request.Email,
		Cellphone: request.Cellphone,
		Portrait:  request.Portrait,
		Password:  string(hashed),
		State:     models.AdminStateNormal,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "事务开始失败"))
		return
	}
	if err := tx.Create(&admin).Error; err != nil {
		tx.Rollback()
		log.Printf("创建管理员失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建管理员失败"))
		return
	}
	for _, groupID := range request.AuthGroups {
		if err := tx.Create(&models.AdminAuthGroup{AdminID: admin.ID, AuthGroupID: groupID}).Error; err != nil {
			tx.Rollback()
			log.Printf("关联权限组失败: %v", err)
			c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建管理员失败"))
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "创建管理员失败"))
		return
	}

	writeAdminLog(c, "创建管理员", map[string]interface{}{"id": admin.ID, "name": admin.Name})
	c.JSON(http.StatusOK, msg.Success("添加成功", admin))
}

// Edit 修改管理员信息和权限组
func (ac *AdminController) Edit(c *gin.Context) {
	id := c.Param("id")
	var admin models.Admin
	if err := db.DB.First(&admin, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "管理员不存在"))
		return
	}

	var request UpdateAdminRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	if request.RealName != "" {
		admin.RealName = request.RealName
	}
	if request.Email != "" {
		admin.Email = request.Email
	}
	if request.Cellphone != "" {
		admin.Cellphone = request.Cellphone
	}
	if request.Portrait != "" {
		admin.Portrait = request.Portrait
	}
	if request.State == models.AdminStateNormal || request.State == models.AdminStateForbid {
		admin.State = request.State
	}

	// 权限组先删后插，和管理员修改同一事务
	tx := db.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "事务开始失败"))
		return
	}
	if err := tx.Save(&admin).Error; err != nil {
		tx.Rollback()
		log.Printf("修改管理员失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改管理员失败"))
		return
	}
	if request.AuthGroups != nil {
		if err := tx.Where("admin_id = ?", admin.ID).Delete(&models.AdminAuthGroup{}).Error; err != nil {
			tx.Rollback()
			log.Printf("清除权限组失败: %v", err)
			c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改管理员失败"))
			return
		}
		for _, groupID := range request.AuthGroups {
			if err := tx.Create(&models.AdminAuthGroup{AdminID: admin.ID, AuthGroupID: groupID}).Error; err != nil {
				tx.Rollback()
				log.Printf("关联权限组失败: %v", err)
				c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改管理员失败"))
				return
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改管理员失败"))
		return
	}

	writeAdminLog(c, "修改管理员", map[string]interface{}{"id": admin.ID, "name": admin.Name})
	c.JSON(http.StatusOK, msg.Success("修改成功", admin))
}

// Password 修改管理员密码
func (ac *AdminController) Password(c *gin.Context) {
	id := c.Param("id")
	var admin models.Admin
	if err := db.DB.First(&admin, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "管理员不存在"))
		return
	}

	var request PasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, msg.ValidationError(err))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改密码失败"))
		return
	}

	if err := db.DB.Model(&admin).Update("password", string(hashed)).Error; err != nil {
		log.Printf("修改密码失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "修改密码失败"))
		return
	}

	writeAdminLog(c, "修改密码", map[string]interface{}{"id": admin.ID, "name": admin.Name})
	c.JSON(http.StatusOK, msg.Success("修改成功", nil))
}

// Destroy 删除管理员，同时删除头像文件和权限组关联
func (ac *AdminController) Destroy(c *gin.Context) {
	id := c.Param("id")
	var admin models.Admin
	if err := db.DB.First(&admin, id).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "管理员不存在"))
		return
	}

	operator := middleware.CurrentAdmin(c)
	if operator != nil && operator.ID == admin.ID {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "不能删除当前登录的管理员"))
		return
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "事务开始失败"))
		return
	}
	if err := tx.Where("admin_id = ?", admin.ID).Delete(&models.AdminAuthGroup{}).Error; err != nil {
		tx.Rollback()
		log.Printf("清除权限组失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除管理员失败"))
		return
	}
	if err := tx.Delete(&admin).Error; err != nil {
		tx.Rollback()
		log.Printf("删除管理员失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除管理员失败"))
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "删除管理员失败"))
		return
	}

	// 头像文件在库记录删除后清理，丢失不影响业务
	if admin.Portrait != "" {
		if err := utils.DeleteMediaFile(ac.Cfg.MediaDir, admin.Portrait); err != nil {
			log.Printf("删除头像文件失败: %v", err)
		}
	}

	writeAdminLog(c, "删除管理员", map[string]interface{}{"id": admin.ID, "name": admin.Name})
	c.JSON(http.StatusOK, msg.Success("删除成功", nil))
}

// AuthGroupList 权限组列表
func (ac *AdminController) AuthGroupList(c *gin.Context) {
	var groups []models.AuthGroup
	if err := db.DB.Find(&groups).Error; err != nil {
		log.Printf("查询权限组失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询权限组失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询成功", groups))
}

// Log 管理员操作日志列表，支持按账号筛选
func (ac *AdminController) Log(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, limit := utils.Pagination(page, limit)

	query := db.DB.Model(&models.AdminLog{})
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("统计操作日志失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询操作日志失败"))
		return
	}

	var logs []models.AdminLog
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		log.Printf("查询操作日志失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询操作日志失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询成功", gin.H{
		"total": total,
		"data":  logs,
	}))
}

// UploadPortrait 上传管理员头像
func (ac *AdminController) UploadPortrait(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "请选择要上传的文件"))
		return
	}

	relPath, err := utils.SaveUploadedImage(c, file, ac.Cfg.MediaDir, "avatar")
	if err != nil {
		log.Printf("保存头像失败: %v", err)
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "上传头像失败: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, msg.Success("上传成功", gin.H{
		"portrait": relPath,
	}))
}
