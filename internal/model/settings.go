package model

import "math"

// Settings 保存每日目标，0 表示未设置。
type Settings struct {
	DailyCalorieGoal int `json:"goal"`
	DailyProteinGoal int `json:"proteinGoal"`
}

// NewSettings 按输入构造设置：截断为整数，负数与非法值回退为 0。
func NewSettings(calorieGoal, proteinGoal float64) Settings {
	return Settings{
		DailyCalorieGoal: goalValue(calorieGoal),
		DailyProteinGoal: goalValue(proteinGoal),
	}
}

// HasCalorieGoal 表示是否设置了热量目标。
func (s Settings) HasCalorieGoal() bool {
	return s.DailyCalorieGoal > 0
}

// HasProteinGoal 表示是否设置了蛋白质目标。
func (s Settings) HasProteinGoal() bool {
	return s.DailyProteinGoal > 0
}

func goalValue(v float64) int {
	v = NonNegative(v)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Trunc(v))
}
