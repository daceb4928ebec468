package service

import (
	"slices"
	"strconv"
	"strings"

	"github.com/platelog/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	quickEntryTitle    = "Quick Add"
	quickEntrySubtitle = "Manual calories"
)

// EntryView 是单条记录的展示数据，热量按条目单独取整。
type EntryView struct {
	ID        string          `json:"id"`
	Type      model.EntryType `json:"type"`
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle"`
	Calories  int             `json:"calories"`
	FoodID    string          `json:"foodId,omitempty"`
	Servings  *float64        `json:"servings,omitempty"`
	Timestamp int64           `json:"ts"`
}

// DaySummary 汇总某一天：合计、记录列表与目标剩余量。
// 目标为 0（未设置）时对应的 Remaining 为 nil，而不是 0。
type DaySummary struct {
	DateKey           string      `json:"dateKey"`
	Totals            Totals      `json:"totals"`
	Entries           []EntryView `json:"entries"`
	CalorieGoal       int         `json:"calorieGoal"`
	ProteinGoal       int         `json:"proteinGoal"`
	CaloriesRemaining *int        `json:"caloriesRemaining"`
	ProteinRemaining  *float64    `json:"proteinRemaining"`
}

// DayTotals 是历史列表中的一行
type DayTotals struct {
	DateKey    string `json:"dateKey"`
	Totals     Totals `json:"totals"`
	EntryCount int    `json:"entryCount"`
}

// PresetItemView 是套餐条目的展示数据
type PresetItemView struct {
	ID           string  `json:"id"`
	FoodID       string  `json:"foodId"`
	FoodName     string  `json:"foodName"`
	ServingLabel string  `json:"servingLabel"`
	Servings     float64 `json:"servings"`
}

// PresetOverview 是套餐及其条目、估算热量
type PresetOverview struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Items             []PresetItemView `json:"items"`
	ItemCount         int              `json:"itemCount"`
	EstimatedCalories int              `json:"estimatedCalories"`
}

// EntryLine 生成单条记录的展示数据
func EntryLine(doc model.Document, entry model.Entry) EntryView {
	view := EntryView{
		ID:        entry.ID,
		Type:      entry.Type,
		Timestamp: entry.Timestamp,
	}

	if entry.IsQuick() {
		view.Type = model.EntryTypeQuick
		view.Title = quickEntryTitle
		view.Subtitle = quickEntrySubtitle
		view.Calories = roundToInt(decimalOf(entry.QuickCaloriesOrZero()))
		return view
	}

	food := doc.FoodOrUnknown(entry.FoodID)
	servings := entry.ServingsOrDefault()

	view.Type = model.EntryTypeFood
	view.Title = food.Name
	view.Subtitle = formatServings(servings) + " × " + food.Label()
	view.Calories = roundToInt(decimalOf(food.CaloriesPerServing).Mul(decimalOf(servings)))
	view.FoodID = entry.FoodID
	view.Servings = &servings
	return view
}

// SummarizeDay 汇总 dateKey 当天的记录与目标
func SummarizeDay(doc model.Document, dateKey string) DaySummary {
	entries := SelectEntriesForDate(doc, dateKey)
	totals := ComputeTotals(doc, entries)

	lines := make([]EntryView, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, EntryLine(doc, entry))
	}

	summary := DaySummary{
		DateKey:     dateKey,
		Totals:      totals,
		Entries:     lines,
		CalorieGoal: doc.Settings.DailyCalorieGoal,
		ProteinGoal: doc.Settings.DailyProteinGoal,
	}

	if doc.Settings.HasCalorieGoal() {
		remaining := max(0, doc.Settings.DailyCalorieGoal-totals.Calories)
		summary.CaloriesRemaining = &remaining
	}
	if doc.Settings.HasProteinGoal() {
		diff := decimal.NewFromInt(int64(doc.Settings.DailyProteinGoal)).Sub(decimalOf(totals.Protein))
		remaining := max(0, roundToTenth(diff))
		summary.ProteinRemaining = &remaining
	}

	return summary
}

// History 按日期倒序返回每天的合计
func History(doc model.Document) []DayTotals {
	keys := ListDistinctLoggedDates(doc)
	rows := make([]DayTotals, 0, len(keys))
	for _, key := range keys {
		entries := SelectEntriesForDate(doc, key)
		rows = append(rows, DayTotals{
			DateKey:    key,
			Totals:     ComputeTotals(doc, entries),
			EntryCount: len(entries),
		})
	}
	return rows
}

// FilterFoods 按名称（不区分大小写）过滤并按名称排序
func FilterFoods(doc model.Document, query string) []model.Food {
	q := strings.ToLower(strings.TrimSpace(query))

	foods := make([]model.Food, 0, len(doc.Foods))
	for _, food := range doc.Foods {
		if q == "" || strings.Contains(strings.ToLower(food.Name), q) {
			foods = append(foods, food)
		}
	}

	collator := collate.New(language.Und)
	slices.SortStableFunc(foods, func(a, b model.Food) int {
		return collator.CompareString(a.Name, b.Name)
	})
	return foods
}

// OverviewForPreset 生成套餐概览，套餐不存在时 ok 为 false
func OverviewForPreset(doc model.Document, presetID string) (PresetOverview, bool) {
	preset, ok := doc.FindMealPreset(presetID)
	if !ok {
		return PresetOverview{}, false
	}
	return buildPresetOverview(doc, preset), true
}

// ListPresetOverviews 按创建顺序返回全部套餐概览
func ListPresetOverviews(doc model.Document) []PresetOverview {
	overviews := make([]PresetOverview, 0, len(doc.MealPresets))
	for _, preset := range doc.MealPresets {
		overviews = append(overviews, buildPresetOverview(doc, preset))
	}
	return overviews
}

func buildPresetOverview(doc model.Document, preset model.MealPreset) PresetOverview {
	items := doc.ItemsForPreset(preset.ID)
	views := make([]PresetItemView, 0, len(items))
	for _, item := range items {
		food := doc.FoodOrUnknown(item.FoodID)
		views = append(views, PresetItemView{
			ID:           item.ID,
			FoodID:       item.FoodID,
			FoodName:     food.Name,
			ServingLabel: food.Label(),
			Servings:     item.Servings,
		})
	}

	return PresetOverview{
		ID:                preset.ID,
		Name:              preset.Name,
		Items:             views,
		ItemCount:         len(views),
		EstimatedCalories: MealPresetEstimatedCalories(doc, preset.ID),
	}
}

func formatServings(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
