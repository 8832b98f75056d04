package draw

import (
	"testing"
	"time"

	"laravel_to_go/models"
)

// 固定序列的随机源，便于断言选取逻辑
func fixedRand(values ...int) func(n int) (int, error) {
	i := 0
	return func(n int) (int, error) {
		v := values[i%len(values)] % n
		i++
		return v, nil
	}
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	t.Run("深夜最后一秒仍属于当日", func(t *testing.T) {
		now := time.Date(2024, 6, 15, 23, 59, 59, 0, loc)
		start, end := dayRange(now)
		if !start.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, loc)) {
			t.Errorf("当日起点应为6月15日零点，实际为%v", start)
		}
		if !end.Equal(time.Date(2024, 6, 16, 0, 0, 0, 0, loc)) {
			t.Errorf("当日终点应为6月16日零点，实际为%v", end)
		}
	})

	t.Run("零点整开始新的一天", func(t *testing.T) {
		now := time.Date(2024, 6, 16, 0, 0, 0, 0, loc)
		start, end := dayRange(now)
		if !start.Equal(time.Date(2024, 6, 16, 0, 0, 0, 0, loc)) {
			t.Errorf("零点整应落在新的一天，起点实际为%v", start)
		}
		if !end.Equal(time.Date(2024, 6, 17, 0, 0, 0, 0, loc)) {
			t.Errorf("新一天的终点应为6月17日零点，实际为%v", end)
		}
	})

	t.Run("相邻两天的区间无缝且不重叠", func(t *testing.T) {
		_, prevEnd := dayRange(time.Date(2024, 6, 15, 23, 59, 59, 0, loc))
		nextStart, _ := dayRange(time.Date(2024, 6, 16, 0, 0, 0, 0, loc))
		if !prevEnd.Equal(nextStart) {
			t.Errorf("前一天的终点%v与后一天的起点%v应相等", prevEnd, nextStart)
		}
	})
}

func TestResolveImage(t *testing.T) {
	// 积分与未知类型的分支不查库，空Service即可覆盖
	s := &Service{}

	t.Run("积分奖品使用固定积分图标", func(t *testing.T) {
		p := &models.IntegralPrize{ID: 1, ModelType: models.ModelTypeIntegralConfiguration, ModelID: 9}
		if got := s.ResolveImage(p); got != IntegralIcon {
			t.Errorf("积分奖品应展示%s，实际为%s", IntegralIcon, got)
		}
	})

	t.Run("未知类型使用默认图标", func(t *testing.T) {
		for _, mt := range []string{models.ModelTypeDefault, "unknown", ""} {
			p := &models.IntegralPrize{ID: 2, ModelType: mt}
			if got := s.ResolveImage(p); got != NoneIcon {
				t.Errorf("model_type=%q应展示%s，实际为%s", mt, NoneIcon, got)
			}
		}
	})

	t.Run("图标永不为空", func(t *testing.T) {
		for _, mt := range []string{models.ModelTypeIntegralConfiguration, models.ModelTypeDefault, "whatever"} {
			if got := s.ResolveImage(&models.IntegralPrize{ModelType: mt}); got == "" {
				t.Errorf("model_type=%q的展示图片不应为空", mt)
			}
		}
	})
}

func TestCheckLimit(t *testing.T) {
	t.Run("上限为0不限次数", func(t *testing.T) {
		if !CheckLimit(0, 0) || !CheckLimit(100, 0) {
			t.Error("上限为0时应始终允许抽奖")
		}
	})

	t.Run("未达上限允许抽奖", func(t *testing.T) {
		if !CheckLimit(2, 3) {
			t.Error("已抽2次、上限3次时应允许抽奖")
		}
	})

	t.Run("达到上限拒绝抽奖", func(t *testing.T) {
		if CheckLimit(3, 3) {
			t.Error("已抽3次、上限3次时应拒绝抽奖")
		}
		if CheckLimit(4, 3) {
			t.Error("超过上限时应拒绝抽奖")
		}
	})
}

func TestLimitExceededError(t *testing.T) {
	err := &LimitExceededError{Limit: 3, Used: 3}
	expected := "当日抽奖已超过3次，请明日再来"
	if err.Error() != expected {
		t.Errorf("错误提示应为%q，实际为%q", expected, err.Error())
	}
}

func TestPickPrize(t *testing.T) {
	t.Run("空奖品列表返回错误", func(t *testing.T) {
		if _, err := PickPrize(nil, fixedRand(0)); err != ErrNoActivePrizes {
			t.Errorf("期望ErrNoActivePrizes，实际为%v", err)
		}
	})

	t.Run("全部权重为0时等概率选取", func(t *testing.T) {
		prizes := []models.IntegralPrize{
			{ID: 1, Name: "奖品A"},
			{ID: 2, Name: "奖品B"},
			{ID: 3, Name: "奖品C"},
		}
		picked, err := PickPrize(prizes, fixedRand(2))
		if err != nil {
			t.Fatalf("选取失败: %v", err)
		}
		if picked.ID != 3 {
			t.Errorf("随机数为2时应选取第三个奖品，实际为%d", picked.ID)
		}
	})

	t.Run("按权重选取", func(t *testing.T) {
		prizes := []models.IntegralPrize{
			{ID: 1, Name: "奖品A", Weight: 10},
			{ID: 2, Name: "奖品B", Weight: 30},
			{ID: 3, Name: "未中奖", Weight: 60},
		}
		// 随机数0-9落在A，10-39落在B，40-99落在未中奖
		cases := []struct {
			r      int
			wantID uint
		}{
			{0, 1}, {9, 1}, {10, 2}, {39, 2}, {40, 3}, {99, 3},
		}
		for _, c := range cases {
			picked, err := PickPrize(prizes, fixedRand(c.r))
			if err != nil {
				t.Fatalf("选取失败: %v", err)
			}
			if picked.ID != c.wantID {
				t.Errorf("随机数%d应选取奖品%d，实际为%d", c.r, c.wantID, picked.ID)
			}
		}
	})

	t.Run("权重为0的奖品不参与加权选取", func(t *testing.T) {
		prizes := []models.IntegralPrize{
			{ID: 1, Name: "奖品A", Weight: 0},
			{ID: 2, Name: "奖品B", Weight: 5},
		}
		for r := 0; r < 5; r++ {
			picked, err := PickPrize(prizes, fixedRand(r))
			if err != nil {
				t.Fatalf("选取失败: %v", err)
			}
			if picked.ID != 2 {
				t.Errorf("权重为0的奖品不应被加权选中，随机数%d选中了%d", r, picked.ID)
			}
		}
	})
}

func TestPresent(t *testing.T) {
	t.Run("中奖时返回奖品名称和图片", func(t *testing.T) {
		prize := &models.IntegralPrize{ID: 1, Name: "跑鞋", ModelType: models.ModelTypeGoodSku}
		result := Present(Outcome{Won: true, Prize: prize, Image: "shoe.png"})
		if !result.State {
			t.Error("中奖时state应为true")
		}
		if result.Name == nil || *result.Name != "跑鞋" {
			t.Errorf("中奖时应返回奖品名称，实际为%v", result.Name)
		}
		if result.Image != "shoe.png" {
			t.Errorf("商品奖品应展示SKU图片shoe.png，实际为%s", result.Image)
		}
	})

	t.Run("未中奖时返回固定图标", func(t *testing.T) {
		result := Present(Outcome{Won: false, Image: NoneIcon})
		if result.State {
			t.Error("未中奖时state应为false")
		}
		if result.Name != nil {
			t.Errorf("未中奖时name应为空，实际为%v", *result.Name)
		}
		if result.Image != NoneIcon {
			t.Errorf("未中奖时应展示固定图标，实际为%s", result.Image)
		}
	})

	t.Run("图片永不为空", func(t *testing.T) {
		result := Present(Outcome{Won: false})
		if result.Image == "" {
			t.Error("展示图片不应为空")
		}
	})

	t.Run("重复映射结果一致", func(t *testing.T) {
		prize := &models.IntegralPrize{ID: 2, Name: "积分", ModelType: models.ModelTypeIntegralConfiguration}
		outcome := Outcome{Won: true, Prize: prize, Image: IntegralIcon}
		first := Present(outcome)
		second := Present(outcome)
		if first.State != second.State || first.Image != second.Image ||
			(first.Name == nil) != (second.Name == nil) ||
			(first.Name != nil && *first.Name != *second.Name) {
			t.Errorf("同一结果两次映射应完全一致: %+v vs %+v", first, second)
		}
	})
}

func TestPrizeIsWinning(t *testing.T) {
	cases := []struct {
		modelType string
		want      bool
	}{
		{models.ModelTypeGoodSku, true},
		{models.ModelTypeIntegralConfiguration, true},
		{models.ModelTypeDefault, false},
		{"unknown", false},
		{"", false},
	}
	for _, c := range cases {
		p := models.IntegralPrize{ModelType: c.modelType}
		if p.IsWinning() != c.want {
			t.Errorf("model_type=%q的奖品IsWinning应为%v", c.modelType, c.want)
		}
	}
}
