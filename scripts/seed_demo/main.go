package main

import (
	"context"
	"fmt"
	"time"

	"github.com/platelog/internal/config"
	"github.com/platelog/internal/db"
	"github.com/platelog/internal/logging"
	"github.com/platelog/internal/model"
	"github.com/platelog/internal/service"
	"github.com/platelog/internal/store"
)

var demoFoods = []model.FoodDraft{
	{Name: "Chicken thigh", CaloriesPerServing: 150, ProteinPerServing: 25, CarbsPerServing: 0, ServingLabel: "1 thigh"},
	{Name: "White rice", CaloriesPerServing: 130, ProteinPerServing: 2.7, CarbsPerServing: 28.2, ServingLabel: "100g"},
	{Name: "Greek yogurt", CaloriesPerServing: 97, ProteinPerServing: 9, CarbsPerServing: 3.6, ServingLabel: "100g"},
	{Name: "Banana", CaloriesPerServing: 105, ProteinPerServing: 1.3, CarbsPerServing: 27, ServingLabel: "1 medium"},
	{Name: "Oats", CaloriesPerServing: 150, ProteinPerServing: 5, CarbsPerServing: 27, ServingLabel: "40g"},
	{Name: "Egg", CaloriesPerServing: 72, ProteinPerServing: 6.3, CarbsPerServing: 0.4, ServingLabel: "1 large"},
}

type demoItem struct {
	food     string
	servings float64
}

type demoPreset struct {
	name  string
	items []demoItem
}

var demoPresets = []demoPreset{
	{name: "Breakfast bowl", items: []demoItem{{"Oats", 1}, {"Greek yogurt", 1.5}, {"Banana", 1}}},
	{name: "Chicken and rice", items: []demoItem{{"Chicken thigh", 2}, {"White rice", 1.5}}},
}

// 演示数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("配置加载失败:", err)
		return
	}
	log := logging.New(cfg)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	defer db.Close(db.DB)

	diary := service.NewDiary(store.NewDocumentStore(db.DB, cfg.DocumentKey), service.WithLogger(log))

	fmt.Println("开始生成演示数据...")
	created, err := seed(context.Background(), diary, 7)
	if err != nil {
		log.Fatal("演示数据生成失败:", err)
	}
	if !created {
		fmt.Println("已有食物数据，跳过生成")
		return
	}

	fmt.Println("演示数据生成完成！")
	fmt.Printf("食物: %d 种\n", len(demoFoods))
	fmt.Printf("套餐: %d 个\n", len(demoPresets))
}

// seed 写入演示食物、套餐、目标与最近 days 天的记录。已有食物时不做任何事。
func seed(ctx context.Context, diary *service.Diary, days int) (bool, error) {
	doc, err := diary.Document(ctx)
	if err != nil {
		return false, err
	}
	if len(doc.Foods) > 0 {
		return false, nil
	}

	if _, err := diary.UpdateSettings(ctx, 2200, 140); err != nil {
		return false, err
	}

	ids := make(map[string]string, len(demoFoods))
	for _, draft := range demoFoods {
		food, err := diary.CreateFood(ctx, draft)
		if err != nil {
			return false, fmt.Errorf("create food %s: %w", draft.Name, err)
		}
		ids[food.Name] = food.ID
	}

	for _, p := range demoPresets {
		preset, err := diary.CreateMealPreset(ctx, p.name)
		if err != nil {
			return false, fmt.Errorf("create preset %s: %w", p.name, err)
		}
		for _, item := range p.items {
			if _, err := diary.AddMealPresetItem(ctx, preset.ID, ids[item.food], item.servings); err != nil {
				return false, fmt.Errorf("add %s to %s: %w", item.food, p.name, err)
			}
		}
	}

	today := time.Now()
	for offset := days - 1; offset >= 1; offset-- {
		dateKey := model.DateKeyOf(today.AddDate(0, 0, -offset))
		if _, err := diary.LogFoodEntry(ctx, ids["Oats"], 1, dateKey); err != nil {
			return false, err
		}
		if _, err := diary.LogFoodEntry(ctx, ids["Chicken thigh"], float64(1+offset%2), dateKey); err != nil {
			return false, err
		}
		if _, err := diary.LogFoodEntry(ctx, ids["White rice"], 1.5, dateKey); err != nil {
			return false, err
		}
		if offset%3 == 0 {
			if _, err := diary.LogQuickEntry(ctx, 250, dateKey); err != nil {
				return false, err
			}
		}
	}

	if _, err := diary.LogFoodEntry(ctx, ids["Egg"], 2, ""); err != nil {
		return false, err
	}

	return true, nil
}
