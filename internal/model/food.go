package model

import "errors"

const (
	// DefaultServingLabel 份量描述为空时的默认值
	DefaultServingLabel = "serving"
	// UnknownFoodName 引用的食物已被删除时展示的名称
	UnknownFoodName = "Unknown food"
)

// ErrFoodNameRequired 食物名称为空时返回
var ErrFoodNameRequired = errors.New("food name is required")

// Food 描述可复用的营养记录，数值均为每份的含量。
type Food struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
	CarbsPerServing    float64 `json:"carbsPerServing"`
	ServingLabel       string  `json:"servingLabel"`
}

// FoodDraft 是创建食物的输入，手动录入与条码导入共用。
type FoodDraft struct {
	Name               string  `json:"name"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	ProteinPerServing  float64 `json:"proteinPerServing"`
	CarbsPerServing    float64 `json:"carbsPerServing"`
	ServingLabel       string  `json:"servingLabel"`
}

// NewFood 校验并规范化草稿：名称必填，数值不小于 0，份量描述默认 serving。
func NewFood(id string, draft FoodDraft) (Food, error) {
	name := CleanText(draft.Name)
	if name == "" {
		return Food{}, ErrFoodNameRequired
	}

	label := CleanText(draft.ServingLabel)
	if label == "" {
		label = DefaultServingLabel
	}

	return Food{
		ID:                 id,
		Name:               name,
		CaloriesPerServing: NonNegative(draft.CaloriesPerServing),
		ProteinPerServing:  NonNegative(draft.ProteinPerServing),
		CarbsPerServing:    NonNegative(draft.CarbsPerServing),
		ServingLabel:       label,
	}, nil
}

// UnknownFood 是悬空引用解析出的零值食物。
func UnknownFood(id string) Food {
	return Food{ID: id, Name: UnknownFoodName, ServingLabel: DefaultServingLabel}
}

// Label 返回份量描述，空值回退到默认值。
func (f Food) Label() string {
	if f.ServingLabel == "" {
		return DefaultServingLabel
	}
	return f.ServingLabel
}
