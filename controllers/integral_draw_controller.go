package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"laravel_to_go/config"
	"laravel_to_go/db"
	"laravel_to_go/models"
	"laravel_to_go/service/draw"
	"laravel_to_go/service/message"
	"laravel_to_go/service/msg"
	"laravel_to_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// 奖品目录缓存，抽奖过程中目录只读，短TTL即可
const prizeCacheTTL = 60 * time.Second

// IntegralDrawController 积分抽奖控制器
type IntegralDrawController struct {
	Cfg  config.Config
	Draw *draw.Service
}

// NewIntegralDrawController 创建积分抽奖控制器
func NewIntegralDrawController(cfg config.Config) *IntegralDrawController {
	return &IntegralDrawController{
		Cfg:  cfg,
		Draw: draw.NewService(db.DB),
	}
}

// prizeView 奖品展示结构
type prizeView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ModelType string `json:"model_type"`
	Img       string `json:"img"`
	Number    int    `json:"number"`
}

// buildPrizeViews 解析奖品展示图片，优先读缓存
func (idc *IntegralDrawController) buildPrizeViews(drawID uint, prizes []models.IntegralPrize) []prizeView {
	cacheKey := fmt.Sprintf("integral_draw:prizes:%d", drawID)
	ctx := context.Background()

	if db.Redis != nil {
		if cached, err := db.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var views []prizeView
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views
			}
		}
	}

	views := make([]prizeView, 0, len(prizes))
	for i := range prizes {
		views = append(views, prizeView{
			ID:        prizes[i].ID,
			Name:      prizes[i].Name,
			ModelType: prizes[i].ModelType,
			Img:       idc.Draw.ResolveImage(&prizes[i]),
			Number:    prizes[i].Number,
		})
	}

	if db.Redis != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := db.Redis.Set(ctx, cacheKey, data, prizeCacheTTL).Err(); err != nil {
				log.Printf("写入奖品缓存失败: %v", err)
			}
		}
	}
	return views
}

// GetList 查询进行中的抽奖活动列表
func (idc *IntegralDrawController) GetList(c *gin.Context) {
	now := time.Now()
	var draws []models.IntegralDraw
	if err := db.DB.Where("start_time <= ? AND end_time >= ?", now, now).Find(&draws).Error; err != nil {
		log.Printf("查询抽奖活动列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询抽奖活动失败"))
		return
	}

	responseData := make([]gin.H, 0, len(draws))
	for _, d := range draws {
		responseData = append(responseData, gin.H{
			"id":         d.ID,
			"name":       d.Name,
			"tries":      d.Tries,
			"start_time": utils.FormatDateTime(d.StartTime),
			"end_time":   utils.FormatDateTime(d.EndTime),
		})
	}

	c.JSON(http.StatusOK, msg.Success("查询抽奖活动成功", responseData))
}

// GetDetail 查询抽奖活动详情，包含奖品列表和当前用户今日已抽次数
func (idc *IntegralDrawController) GetDetail(c *gin.Context) {
	drawID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || drawID == 0 {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "无效的活动ID"))
		return
	}

	var activity models.IntegralDraw
	if err := db.DB.Preload("Prizes").First(&activity, drawID).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "抽奖活动不存在"))
		return
	}
	if !activity.IsActive(time.Now()) {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "抽奖活动未在进行中"))
		return
	}

	userID := c.GetUint("userID")
	eligibility, err := idc.Draw.CanDraw(userID, activity.ID, time.Now())
	if err != nil {
		log.Printf("查询抽奖资格失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询抽奖资格失败"))
		return
	}

	c.JSON(http.StatusOK, msg.Success("查询抽奖活动详情成功", gin.H{
		"id":             activity.ID,
		"name":           activity.Name,
		"tries":          eligibility.Limit,
		"has_draw":       eligibility.TriesUsedToday,
		"allowed":        eligibility.Allowed,
		"integral_prize": idc.buildPrizeViews(activity.ID, activity.Prizes),
	}))
}

// Winning 执行一次抽奖，返回{state, name, image}或{code, message}
func (idc *IntegralDrawController) Winning(c *gin.Context) {
	drawID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || drawID == 0 {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "无效的活动ID"))
		return
	}

	userID := c.GetUint("userID")
	result, err := idc.Draw.Winning(userID, uint(drawID))
	if err != nil {
		var limitErr *draw.LimitExceededError
		switch {
		case errors.As(err, &limitErr):
			c.JSON(http.StatusForbidden, msg.Error(msg.CodeLimitExceeded, limitErr.Error()))
		case errors.Is(err, draw.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "抽奖活动不存在"))
		case errors.Is(err, draw.ErrNoActivePrizes):
			c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, draw.ErrNoActivePrizes.Error()))
		default:
			log.Printf("抽奖失败: user_id=%d, draw_id=%d, err=%v", userID, drawID, err)
			c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "抽奖失败，请稍后再试"))
		}
		return
	}

	// 中奖后发送通知短信，异步且不影响结果返回
	if result.State && result.Name != nil {
		var user models.User
		if err := db.DB.First(&user, userID).Error; err == nil {
			message.NotifyWinner(idc.Cfg.SMSConfig, user.Cellphone, *result.Name)
		}
	}

	c.JSON(http.StatusOK, result)
}

// Export 导出活动的抽奖记录为xlsx
func (idc *IntegralDrawController) Export(c *gin.Context) {
	drawID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || drawID == 0 {
		c.JSON(http.StatusBadRequest, msg.Error(msg.CodeParameterWrong, "无效的活动ID"))
		return
	}

	var activity models.IntegralDraw
	if err := db.DB.First(&activity, drawID).Error; err != nil {
		c.JSON(http.StatusNotFound, msg.Error(msg.CodeNotFound, "抽奖活动不存在"))
		return
	}

	var records []models.IntegralRecord
	if err := db.DB.Where("integral_draw_id = ?", drawID).Order("drawn_at").Find(&records).Error; err != nil {
		log.Printf("查询抽奖记录失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询抽奖记录失败"))
		return
	}

	// 奖品名称映射
	var prizes []models.IntegralPrize
	if err := db.DB.Where("integral_draw_id = ?", drawID).Find(&prizes).Error; err != nil {
		log.Printf("查询奖品列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, msg.Error(msg.CodeInternal, "查询奖品列表失败"))
		return
	}
	prizeNames := make(map[uint]string, len(prizes))
	for _, p := range prizes {
		prizeNames[p.ID] = p.Name
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"记录ID", "用户ID", "奖品", "是否中奖", "抽奖时间"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, r := range records {
		prizeName := ""
		won := "否"
		if r.IntegralPrizeID != nil {
			prizeName = prizeNames[*r.IntegralPrizeID]
			won = "是"
		}
		values := []interface{}{r.ID, r.UserID, prizeName, won, utils.FormatDateTime(r.DrawnAt)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("integral_draw_%d_records.xlsx", drawID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("导出抽奖记录失败: %v", err)
	}
}
