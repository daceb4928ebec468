package service

import (
	"context"
	"slices"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

// LogFoodEntry 记录一次食物摄入。dateKey 为空时记到今天。
// 份数非法时按 1 处理，负数限制为 0；不校验食物是否存在。
func (d *Diary) LogFoodEntry(ctx context.Context, foodID string, servings float64, dateKey string) (model.Entry, error) {
	key, err := d.resolveDateKey(dateKey)
	if err != nil {
		return model.Entry{}, err
	}

	entry := model.NewFoodEntry(d.newID(), key, foodID, servings, d.now())
	fields := logrus.Fields{"entry_id": entry.ID, "food_id": foodID, "date_key": key}
	err = d.mutate(ctx, "log_food_entry", fields, func(doc *model.Document) (bool, error) {
		doc.Entries = append(doc.Entries, entry)
		return true, nil
	})
	if err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

// LogQuickEntry 记录手动输入的热量，calories 必须为有限正数。
func (d *Diary) LogQuickEntry(ctx context.Context, calories float64, dateKey string) (model.Entry, error) {
	if !model.IsFinitePositive(calories) {
		return model.Entry{}, ErrInvalidQuickCalories
	}

	key, err := d.resolveDateKey(dateKey)
	if err != nil {
		return model.Entry{}, err
	}

	entry := model.NewQuickEntry(d.newID(), key, calories, d.now())
	fields := logrus.Fields{"entry_id": entry.ID, "date_key": key}
	err = d.mutate(ctx, "log_quick_entry", fields, func(doc *model.Document) (bool, error) {
		doc.Entries = append(doc.Entries, entry)
		return true, nil
	})
	if err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

// DeleteEntry 删除记录，不存在时不做任何事
func (d *Diary) DeleteEntry(ctx context.Context, id string) error {
	fields := logrus.Fields{"entry_id": id}
	return d.mutate(ctx, "delete_entry", fields, func(doc *model.Document) (bool, error) {
		before := len(doc.Entries)
		doc.Entries = slices.DeleteFunc(doc.Entries, func(e model.Entry) bool { return e.ID == id })
		return len(doc.Entries) != before, nil
	})
}

// EntriesForDate 返回某天的记录，最新的在前
func (d *Diary) EntriesForDate(ctx context.Context, dateKey string) ([]model.Entry, error) {
	key, err := d.resolveDateKey(dateKey)
	if err != nil {
		return nil, err
	}
	doc, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return SelectEntriesForDate(doc, key), nil
}
