package model

import (
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// CleanText 裁剪首尾空白，其余字符按原文保存，转义交给渲染层。
func CleanText(raw string) string {
	return strings.TrimSpace(raw)
}

// ContainsMarkup 判断文本在 HTML 渲染时会被解释为标记。
func ContainsMarkup(text string) bool {
	sanitized := plainTextPolicy.Sanitize(text)
	return html.UnescapeString(sanitized) != html.UnescapeString(text)
}

// NonNegative 将数值限制在 [0, +Inf)，NaN 与无穷大视为 0。
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// IsFinitePositive 判断数值为有限正数。
func IsFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// NormalizeServings 规范化份数：非法值回退为 1，负数限制为 0。
func NormalizeServings(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
