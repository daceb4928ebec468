package service

import (
	"cmp"
	"math"
	"slices"

	"github.com/platelog/internal/model"
	"github.com/shopspring/decimal"
)

// Totals 是一组记录的营养合计。
// Calories 取整，Protein/Carbs 保留一位小数，均在求和之后只舍入一次。
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
}

// ComputeTotals 计算给定记录的合计，不做任何过滤。
// 使用十进制精确累加，结果与记录顺序无关。
func ComputeTotals(doc model.Document, entries []model.Entry) Totals {
	calories := decimal.Zero
	protein := decimal.Zero
	carbs := decimal.Zero

	for _, entry := range entries {
		if entry.IsQuick() {
			calories = calories.Add(decimalOf(entry.QuickCaloriesOrZero()))
			continue
		}

		food := doc.FoodOrUnknown(entry.FoodID)
		servings := decimalOf(entry.ServingsOrDefault())
		calories = calories.Add(decimalOf(food.CaloriesPerServing).Mul(servings))
		protein = protein.Add(decimalOf(food.ProteinPerServing).Mul(servings))
		carbs = carbs.Add(decimalOf(food.CarbsPerServing).Mul(servings))
	}

	return Totals{
		Calories: roundToInt(calories),
		Protein:  roundToTenth(protein),
		Carbs:    roundToTenth(carbs),
	}
}

// SelectEntriesForDate 返回 dateKey 当天的记录，按创建时间倒序。
func SelectEntriesForDate(doc model.Document, dateKey string) []model.Entry {
	selected := make([]model.Entry, 0)
	for _, entry := range doc.Entries {
		if entry.DateKey == dateKey {
			selected = append(selected, entry)
		}
	}

	slices.SortStableFunc(selected, func(a, b model.Entry) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return selected
}

// ListDistinctLoggedDates 返回出现过的 dateKey，按日期倒序。
func ListDistinctLoggedDates(doc model.Document) []string {
	seen := make(map[string]struct{}, len(doc.Entries))
	keys := make([]string, 0)
	for _, entry := range doc.Entries {
		if _, ok := seen[entry.DateKey]; ok {
			continue
		}
		seen[entry.DateKey] = struct{}{}
		keys = append(keys, entry.DateKey)
	}

	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Compare(b, a)
	})
	return keys
}

// MealPresetEstimatedCalories 估算套餐热量，缺失的食物按 0 计，最后取整一次。
func MealPresetEstimatedCalories(doc model.Document, presetID string) int {
	total := decimal.Zero
	for _, item := range doc.ItemsForPreset(presetID) {
		food := doc.FoodOrUnknown(item.FoodID)
		total = total.Add(decimalOf(food.CaloriesPerServing).Mul(decimalOf(item.Servings)))
	}
	return roundToInt(total)
}

func decimalOf(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// roundToInt 四舍五入到整数，.5 远离零
func roundToInt(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

func roundToTenth(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}
