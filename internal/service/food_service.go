package service

import (
	"context"
	"slices"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

// ListFoods 返回按名称排序的食物，query 非空时按名称模糊过滤
func (d *Diary) ListFoods(ctx context.Context, query string) ([]model.Food, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFoods(doc, query), nil
}

// CreateFood 新建食物。名称必填，数值限制为非负，份量描述默认 serving。
func (d *Diary) CreateFood(ctx context.Context, draft model.FoodDraft) (model.Food, error) {
	food, err := model.NewFood(d.newID(), draft)
	if err != nil {
		return model.Food{}, err
	}

	fields := logrus.Fields{"food_id": food.ID, "markup": model.ContainsMarkup(food.Name)}
	err = d.mutate(ctx, "create_food", fields, func(doc *model.Document) (bool, error) {
		doc.Foods = append(doc.Foods, food)
		return true, nil
	})
	if err != nil {
		return model.Food{}, err
	}
	return food, nil
}

// DeleteFood 删除食物。引用它的记录与套餐条目保留，读取时按未知食物处理。
func (d *Diary) DeleteFood(ctx context.Context, id string) error {
	fields := logrus.Fields{"food_id": id}
	return d.mutate(ctx, "delete_food", fields, func(doc *model.Document) (bool, error) {
		before := len(doc.Foods)
		doc.Foods = slices.DeleteFunc(doc.Foods, func(f model.Food) bool { return f.ID == id })
		return len(doc.Foods) != before, nil
	})
}
