package service

import (
	"context"
	"slices"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

// ListMealPresets 返回全部套餐及其条目、估算热量
func (d *Diary) ListMealPresets(ctx context.Context) ([]PresetOverview, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ListPresetOverviews(doc), nil
}

// GetMealPreset 返回单个套餐详情
func (d *Diary) GetMealPreset(ctx context.Context, id string) (PresetOverview, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return PresetOverview{}, err
	}
	overview, ok := OverviewForPreset(doc, id)
	if !ok {
		return PresetOverview{}, ErrMealPresetNotFound
	}
	return overview, nil
}

// CreateMealPreset 新建套餐，名称必填
func (d *Diary) CreateMealPreset(ctx context.Context, name string) (model.MealPreset, error) {
	preset, err := model.NewMealPreset(d.newID(), name)
	if err != nil {
		return model.MealPreset{}, err
	}

	fields := logrus.Fields{"meal_preset_id": preset.ID, "markup": model.ContainsMarkup(preset.Name)}
	err = d.mutate(ctx, "create_meal_preset", fields, func(doc *model.Document) (bool, error) {
		doc.MealPresets = append(doc.MealPresets, preset)
		return true, nil
	})
	if err != nil {
		return model.MealPreset{}, err
	}
	return preset, nil
}

// DeleteMealPreset 删除套餐及其条目，已生成的记录不受影响
func (d *Diary) DeleteMealPreset(ctx context.Context, id string) error {
	fields := logrus.Fields{"meal_preset_id": id}
	return d.mutate(ctx, "delete_meal_preset", fields, func(doc *model.Document) (bool, error) {
		presets := len(doc.MealPresets)
		items := len(doc.MealPresetItems)
		doc.MealPresets = slices.DeleteFunc(doc.MealPresets, func(p model.MealPreset) bool { return p.ID == id })
		doc.MealPresetItems = slices.DeleteFunc(doc.MealPresetItems, func(i model.MealPresetItem) bool { return i.MealPresetID == id })
		return presets != len(doc.MealPresets) || items != len(doc.MealPresetItems), nil
	})
}

// AddMealPresetItem 向套餐添加食物。文档中没有任何食物时拒绝。
func (d *Diary) AddMealPresetItem(ctx context.Context, presetID, foodID string, servings float64) (model.MealPresetItem, error) {
	item := model.NewMealPresetItem(d.newID(), presetID, foodID, servings)

	fields := logrus.Fields{"meal_preset_id": presetID, "item_id": item.ID, "food_id": foodID}
	err := d.mutate(ctx, "add_meal_preset_item", fields, func(doc *model.Document) (bool, error) {
		if len(doc.Foods) == 0 {
			return false, ErrNoFoods
		}
		if _, ok := doc.FindMealPreset(presetID); !ok {
			return false, ErrMealPresetNotFound
		}
		doc.MealPresetItems = append(doc.MealPresetItems, item)
		return true, nil
	})
	if err != nil {
		return model.MealPresetItem{}, err
	}
	return item, nil
}

// RemoveMealPresetItem 删除套餐条目，不存在时不做任何事
func (d *Diary) RemoveMealPresetItem(ctx context.Context, itemID string) error {
	fields := logrus.Fields{"item_id": itemID}
	return d.mutate(ctx, "remove_meal_preset_item", fields, func(doc *model.Document) (bool, error) {
		before := len(doc.MealPresetItems)
		doc.MealPresetItems = slices.DeleteFunc(doc.MealPresetItems, func(i model.MealPresetItem) bool { return i.ID == itemID })
		return len(doc.MealPresetItems) != before, nil
	})
}

// ApplyMealPresetToToday 按套餐条目为今天生成记录，套餐本身不变。
// 套餐没有条目时什么也不做，返回空切片。
func (d *Diary) ApplyMealPresetToToday(ctx context.Context, presetID string) ([]model.Entry, error) {
	created := make([]model.Entry, 0)

	fields := logrus.Fields{"meal_preset_id": presetID}
	err := d.mutate(ctx, "apply_meal_preset", fields, func(doc *model.Document) (bool, error) {
		items := doc.ItemsForPreset(presetID)
		if len(items) == 0 {
			return false, nil
		}

		today := d.Today()
		at := d.now()
		for _, item := range items {
			entry := model.NewFoodEntry(d.newID(), today, item.FoodID, item.Servings, at)
			created = append(created, entry)
		}
		doc.Entries = append(doc.Entries, created...)
		fields["entries"] = len(created)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
