package draw

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"laravel_to_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 固定图标，积分奖品与未中奖槽位不走SKU图片
const (
	IntegralIcon = "/static/img/integral.png"
	NoneIcon     = "/static/img/none.png"
)

var (
	// ErrCampaignNotFound 活动不存在或不在进行时间内
	ErrCampaignNotFound = errors.New("抽奖活动不存在或未在进行中")
	// ErrNoActivePrizes 活动没有配置任何奖品
	ErrNoActivePrizes = errors.New("抽奖活动暂无可用奖品")
)

// LimitExceededError 当日抽奖次数已达上限
type LimitExceededError struct {
	Limit int
	Used  int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("当日抽奖已超过%d次，请明日再来", e.Limit)
}

// Eligibility 当日抽奖资格
type Eligibility struct {
	Allowed        bool `json:"allowed"`
	TriesUsedToday int  `json:"has_draw"`
	Limit          int  `json:"tries"`
}

// Outcome 一次抽奖的结果，奖品为nil表示未中奖
type Outcome struct {
	Won   bool
	Prize *models.IntegralPrize
	Image string
}

// Result 客户端展示结构
type Result struct {
	State bool    `json:"state"`
	Name  *string `json:"name"`
	Image string  `json:"image"`
}

// Service 抽奖服务
type Service struct {
	db *gorm.DB
}

// NewService 创建抽奖服务
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// dayRange 返回now所在自然日的起止时间（服务器时区）
func dayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// CheckLimit 判断在指定上限下还能否抽奖，上限为0表示不限次数
func CheckLimit(used, limit int) bool {
	return limit == 0 || used < limit
}

// countToday 统计用户在该活动下今日已抽次数
func countToday(tx *gorm.DB, userID, drawID uint, now time.Time) (int, error) {
	start, end := dayRange(now)
	var count int64
	err := tx.Model(&models.IntegralRecord{}).
		Where("user_id = ? AND integral_draw_id = ? AND drawn_at >= ? AND drawn_at < ?",
			userID, drawID, start, end).
		Count(&count).Error
	return int(count), err
}

// CanDraw 查询用户在活动下的当日抽奖资格
func (s *Service) CanDraw(userID, drawID uint, now time.Time) (Eligibility, error) {
	var activity models.IntegralDraw
	if err := s.db.First(&activity, drawID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Eligibility{}, ErrCampaignNotFound
		}
		return Eligibility{}, err
	}
	if !activity.IsActive(now) {
		return Eligibility{}, ErrCampaignNotFound
	}

	used, err := countToday(s.db, userID, drawID, now)
	if err != nil {
		return Eligibility{}, err
	}
	return Eligibility{
		Allowed:        CheckLimit(used, activity.Tries),
		TriesUsedToday: used,
		Limit:          activity.Tries,
	}, nil
}

// Winning 执行一次抽奖
// 资格校验、奖品选取和记录落库在同一个事务中完成，活动行加排它锁，
// 避免并发请求同时通过当日次数校验后超限落库
func (s *Service) Winning(userID, drawID uint) (Result, error) {
	now := time.Now()

	tx := s.db.Begin()
	if tx.Error != nil {
		return Result{}, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// 1. 锁定活动行
	var activity models.IntegralDraw
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&activity, drawID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, ErrCampaignNotFound
		}
		return Result{}, err
	}
	if !activity.IsActive(now) {
		tx.Rollback()
		return Result{}, ErrCampaignNotFound
	}

	// 2. 当日次数校验
	used, err := countToday(tx, userID, drawID, now)
	if err != nil {
		tx.Rollback()
		return Result{}, err
	}
	if !CheckLimit(used, activity.Tries) {
		tx.Rollback()
		return Result{}, &LimitExceededError{Limit: activity.Tries, Used: used}
	}

	// 3. 取活动奖品并选取结果
	var prizes []models.IntegralPrize
	if err := tx.Where("integral_draw_id = ?", drawID).Find(&prizes).Error; err != nil {
		tx.Rollback()
		return Result{}, err
	}
	if len(prizes) == 0 {
		tx.Rollback()
		return Result{}, ErrNoActivePrizes
	}

	picked, err := PickPrize(prizes, randIndex)
	if err != nil {
		tx.Rollback()
		return Result{}, err
	}

	// 4. 落一条抽奖记录，未中奖时奖品ID为NULL
	record := models.IntegralRecord{
		UserID:         userID,
		IntegralDrawID: drawID,
		DrawnAt:        now,
	}
	outcome := Outcome{Image: NoneIcon}
	if picked.IsWinning() {
		prizeID := picked.ID
		record.IntegralPrizeID = &prizeID
		outcome.Won = true
		outcome.Prize = picked
		outcome.Image = s.ResolveImage(picked)
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		log.Printf("创建抽奖记录失败: %v", err)
		return Result{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return Result{}, err
	}

	return Present(outcome), nil
}

// PickPrize 按权重选取奖品，全部权重为0时等概率
func PickPrize(prizes []models.IntegralPrize, randInt func(n int) (int, error)) (*models.IntegralPrize, error) {
	if len(prizes) == 0 {
		return nil, ErrNoActivePrizes
	}

	total := 0
	for _, p := range prizes {
		if p.Weight > 0 {
			total += p.Weight
		}
	}

	// 未配置权重，等概率选取
	if total == 0 {
		i, err := randInt(len(prizes))
		if err != nil {
			return nil, err
		}
		return &prizes[i], nil
	}

	r, err := randInt(total)
	if err != nil {
		return nil, err
	}
	for i := range prizes {
		if prizes[i].Weight <= 0 {
			continue
		}
		if r < prizes[i].Weight {
			return &prizes[i], nil
		}
		r -= prizes[i].Weight
	}
	// 权重遍历不应落空，兜底返回最后一个有权重的奖品
	for i := len(prizes) - 1; i >= 0; i-- {
		if prizes[i].Weight > 0 {
			return &prizes[i], nil
		}
	}
	return &prizes[len(prizes)-1], nil
}

// randIndex 生成[0, n)的随机数
func randIndex(n int) (int, error) {
	bn, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(bn.Int64()), nil
}

// ResolveImage 根据奖品关联类型解析展示图片
// 封闭的三种情况：商品SKU取SKU自身图片，积分配置取固定积分图标，其余取固定未中奖图标
func (s *Service) ResolveImage(p *models.IntegralPrize) string {
	switch p.ModelType {
	case models.ModelTypeGoodSku:
		var sku models.GoodSku
		if err := s.db.First(&sku, p.ModelID).Error; err != nil {
			log.Printf("查询奖品关联SKU失败: prize_id=%d, model_id=%d, err=%v", p.ID, p.ModelID, err)
			return NoneIcon
		}
		if sku.Img == "" {
			return NoneIcon
		}
		return sku.Img
	case models.ModelTypeIntegralConfiguration:
		return IntegralIcon
	default:
		return NoneIcon
	}
}

// Present 将抽奖结果映射为客户端展示结构，纯映射，不做任何I/O
func Present(o Outcome) Result {
	result := Result{State: o.Won, Image: o.Image}
	if result.Image == "" {
		result.Image = NoneIcon
	}
	if o.Won && o.Prize != nil {
		name := o.Prize.Name
		result.Name = &name
	}
	return result
}
