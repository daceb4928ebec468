package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/platelog/internal/model"
)

const (
	scannedProductName = "Scanned product"
	per100gLabel       = "100g"
)

// ExternalProduct 是 Open Food Facts 返回的商品记录中用到的字段。
// nutriments 的值可能是数字，也可能是带逗号小数点的字符串。
type ExternalProduct struct {
	ProductName            string         `json:"product_name"`
	AbbreviatedProductName string         `json:"abbreviated_product_name"`
	GenericName            string         `json:"generic_name"`
	ServingSize            string         `json:"serving_size"`
	Nutriments             map[string]any `json:"nutriments"`
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// MapExternalProduct 将外部商品记录转换为食物草稿，按每 100g 计。
// 纯转换，不写入任何数据；草稿交给 CreateFood 保存。
func MapExternalProduct(product ExternalProduct) model.FoodDraft {
	name := firstNonEmpty(product.ProductName, product.AbbreviatedProductName, product.GenericName)
	if name == "" {
		name = scannedProductName
	}

	calories := nutrimentValue(product.Nutriments, "energy-kcal_100g", "energy-kcal")
	protein := nutrimentValue(product.Nutriments, "proteins_100g", "proteins")
	carbs := nutrimentValue(product.Nutriments, "carbohydrates_100g", "carbohydrates")

	label := per100gLabel
	if product.ServingSize != "" {
		label = per100gLabel + " (serving: " + product.ServingSize + ")"
	}

	return model.FoodDraft{
		Name:               name,
		CaloriesPerServing: float64(roundToInt(decimalOf(calories))),
		ProteinPerServing:  roundToTenth(decimalOf(protein)),
		CarbsPerServing:    roundToTenth(decimalOf(carbs)),
		ServingLabel:       label,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// nutrimentValue 取 primary，缺失或为 null 时取 fallback，都没有时为 0
func nutrimentValue(nutriments map[string]any, primary, fallback string) float64 {
	if v, ok := nutriments[primary]; ok && v != nil {
		return parseNutriment(v)
	}
	if v, ok := nutriments[fallback]; ok && v != nil {
		return parseNutriment(v)
	}
	return 0
}

// parseNutriment 解析数字或数字前缀字符串，第一个逗号视为小数点，无法解析时为 0
func parseNutriment(v any) float64 {
	var raw string
	switch value := v.(type) {
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0
		}
		return value
	case string:
		raw = value
	default:
		return 0
	}

	raw = strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
	match := leadingNumber.FindString(raw)
	if match == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return parsed
}
