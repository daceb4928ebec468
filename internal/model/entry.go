package model

import (
	"errors"
	"time"
)

// DateKeyLayout 是 dateKey 的格式（本地日历日，零填充）。
const DateKeyLayout = "2006-01-02"

// ErrInvalidDateKey dateKey 不是合法的 YYYY-MM-DD 日期时返回
var ErrInvalidDateKey = errors.New("invalid date key")

// EntryType 区分引用食物的记录与手动输入热量的记录
type EntryType string

const (
	EntryTypeFood  EntryType = "food"
	EntryTypeQuick EntryType = "quick"
)

// Entry 表示一次饮食记录。
// FoodID/Servings 仅在 type=food 时出现，QuickCalories 仅在 type=quick 时出现；
// 指针字段用于区分“缺省”与“0”，保证持久化往返无损。
type Entry struct {
	ID            string    `json:"id"`
	DateKey       string    `json:"dateKey"`
	Type          EntryType `json:"type"`
	FoodID        string    `json:"foodId,omitempty"`
	Servings      *float64  `json:"servings,omitempty"`
	QuickCalories *float64  `json:"quickCalories,omitempty"`
	Timestamp     int64     `json:"ts"`
}

// NewFoodEntry 构造引用食物的记录，份数经 NormalizeServings 处理。
func NewFoodEntry(id, dateKey, foodID string, servings float64, at time.Time) Entry {
	s := NormalizeServings(servings)
	return Entry{
		ID:        id,
		DateKey:   dateKey,
		Type:      EntryTypeFood,
		FoodID:    foodID,
		Servings:  &s,
		Timestamp: at.UnixMilli(),
	}
}

// NewQuickEntry 构造手动热量记录，调用方负责校验 calories 为有限正数。
func NewQuickEntry(id, dateKey string, calories float64, at time.Time) Entry {
	c := calories
	return Entry{
		ID:            id,
		DateKey:       dateKey,
		Type:          EntryTypeQuick,
		QuickCalories: &c,
		Timestamp:     at.UnixMilli(),
	}
}

// IsQuick 表示是否为手动热量记录
func (e Entry) IsQuick() bool {
	return e.Type == EntryTypeQuick
}

// ServingsOrDefault 返回份数，缺省时为 1。
func (e Entry) ServingsOrDefault() float64 {
	if e.Servings == nil {
		return 1
	}
	return *e.Servings
}

// QuickCaloriesOrZero 返回手动热量，缺省时为 0。
func (e Entry) QuickCaloriesOrZero() float64 {
	if e.QuickCalories == nil {
		return 0
	}
	return *e.QuickCalories
}

// DateKeyOf 返回时间所在本地日历日的 dateKey。
func DateKeyOf(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey 校验 dateKey 并返回规范化后的值。
func ParseDateKey(raw string) (string, error) {
	t, err := time.ParseInLocation(DateKeyLayout, raw, time.Local)
	if err != nil {
		return "", ErrInvalidDateKey
	}
	return t.Format(DateKeyLayout), nil
}
