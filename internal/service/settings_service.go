package service

import (
	"context"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

// GetSettings 读取每日目标
func (d *Diary) GetSettings(ctx context.Context) (model.Settings, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return model.Settings{}, err
	}
	return doc.Settings, nil
}

// UpdateSettings 覆盖两个目标值，截断为整数并限制为非负，从不拒绝输入。
func (d *Diary) UpdateSettings(ctx context.Context, calorieGoal, proteinGoal float64) (model.Settings, error) {
	settings := model.NewSettings(calorieGoal, proteinGoal)

	fields := logrus.Fields{"goal": settings.DailyCalorieGoal, "protein_goal": settings.DailyProteinGoal}
	err := d.mutate(ctx, "update_settings", fields, func(doc *model.Document) (bool, error) {
		doc.Settings = settings
		return true, nil
	})
	if err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// ResetAll 丢弃整份文档，之后读取到的是默认文档。确认由调用方负责。
func (d *Diary) ResetAll(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.store.Reset(ctx); err != nil {
		d.log.WithError(err).Error("reset document failed")
		return err
	}
	d.log.WithField("op", "reset_all").Warn("document reset")
	return nil
}
