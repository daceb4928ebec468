package model

// Document 是唯一的持久化文档，包含全部设置与记录。
type Document struct {
	Settings        Settings         `json:"settings"`
	Foods           []Food           `json:"foods"`
	MealPresets     []MealPreset     `json:"mealPresets"`
	MealPresetItems []MealPresetItem `json:"mealPresetItems"`
	Entries         []Entry          `json:"entries"`
}

// NewDocument 返回默认形态的空文档。
func NewDocument() Document {
	return Document{
		Settings:        Settings{},
		Foods:           []Food{},
		MealPresets:     []MealPreset{},
		MealPresetItems: []MealPresetItem{},
		Entries:         []Entry{},
	}
}

// Normalize 将缺失的集合补为空切片，使加载结果与默认形态一致。
func (d *Document) Normalize() {
	if d.Foods == nil {
		d.Foods = []Food{}
	}
	if d.MealPresets == nil {
		d.MealPresets = []MealPreset{}
	}
	if d.MealPresetItems == nil {
		d.MealPresetItems = []MealPresetItem{}
	}
	if d.Entries == nil {
		d.Entries = []Entry{}
	}
}

// ResolveFood 按 ID 查找食物，不存在时 ok 为 false。
// 所有读取食物引用的位置都应通过这里或 FoodOrUnknown。
func (d Document) ResolveFood(id string) (Food, bool) {
	for _, food := range d.Foods {
		if food.ID == id {
			return food, true
		}
	}
	return Food{}, false
}

// FoodOrUnknown 解析食物引用，悬空时返回零营养的 Unknown food。
func (d Document) FoodOrUnknown(id string) Food {
	if food, ok := d.ResolveFood(id); ok {
		return food
	}
	return UnknownFood(id)
}

// FindMealPreset 按 ID 查找套餐
func (d Document) FindMealPreset(id string) (MealPreset, bool) {
	for _, preset := range d.MealPresets {
		if preset.ID == id {
			return preset, true
		}
	}
	return MealPreset{}, false
}

// ItemsForPreset 返回套餐的全部条目，保持插入顺序
func (d Document) ItemsForPreset(presetID string) []MealPresetItem {
	items := make([]MealPresetItem, 0)
	for _, item := range d.MealPresetItems {
		if item.MealPresetID == presetID {
			items = append(items, item)
		}
	}
	return items
}
