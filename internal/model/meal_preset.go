package model

import "errors"

// ErrMealPresetNameRequired 套餐名称为空时返回
var ErrMealPresetNameRequired = errors.New("meal preset name is required")

// MealPreset 是可一键记录的食物组合
type MealPreset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MealPresetItem 记录套餐中的一种食物及份数
type MealPresetItem struct {
	ID           string  `json:"id"`
	MealPresetID string  `json:"mealPresetId"`
	FoodID       string  `json:"foodId"`
	Servings     float64 `json:"servings"`
}

// NewMealPreset 校验名称后构造套餐
func NewMealPreset(id, name string) (MealPreset, error) {
	cleaned := CleanText(name)
	if cleaned == "" {
		return MealPreset{}, ErrMealPresetNameRequired
	}
	return MealPreset{ID: id, Name: cleaned}, nil
}

// NewMealPresetItem 构造套餐条目，份数经 NormalizeServings 处理
func NewMealPresetItem(id, presetID, foodID string, servings float64) MealPresetItem {
	return MealPresetItem{
		ID:           id,
		MealPresetID: presetID,
		FoodID:       foodID,
		Servings:     NormalizeServings(servings),
	}
}
