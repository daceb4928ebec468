package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type mealPresetPayload struct {
	Name string `json:"name"`
}

type mealPresetItemPayload struct {
	FoodID   string     `json:"foodId"`
	Servings flexNumber `json:"servings"`
}

// ListMealPresets 返回全部套餐概览
func (a *API) ListMealPresets(c *gin.Context) {
	presets, err := a.diary.ListMealPresets(c.Request.Context())
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPresets": presets})
}

// GetMealPreset 返回单个套餐
func (a *API) GetMealPreset(c *gin.Context) {
	preset, err := a.diary.GetMealPreset(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPreset": preset})
}

// CreateMealPreset 新建套餐
func (a *API) CreateMealPreset(c *gin.Context) {
	var payload mealPresetPayload
	if !bindJSON(c, &payload, "invalid meal preset payload") {
		return
	}

	preset, err := a.diary.CreateMealPreset(c.Request.Context(), payload.Name)
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mealPreset": preset})
}

// DeleteMealPreset 删除套餐及其条目
func (a *API) DeleteMealPreset(c *gin.Context) {
	if err := a.diary.DeleteMealPreset(c.Request.Context(), c.Param("id")); err != nil {
		handleDiaryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMealPresetItem 向套餐添加食物，servings 缺省为 1
func (a *API) AddMealPresetItem(c *gin.Context) {
	var payload mealPresetItemPayload
	if !bindJSON(c, &payload, "invalid meal preset item payload") {
		return
	}

	foodID := strings.TrimSpace(payload.FoodID)
	if foodID == "" {
		respondError(c, http.StatusBadRequest, "foodId is required")
		return
	}

	item, err := a.diary.AddMealPresetItem(c.Request.Context(), c.Param("id"), foodID, payload.Servings.Or(1))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveMealPresetItem 删除套餐条目
func (a *API) RemoveMealPresetItem(c *gin.Context) {
	if err := a.diary.RemoveMealPresetItem(c.Request.Context(), c.Param("itemId")); err != nil {
		handleDiaryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyMealPreset 把套餐记到今天
func (a *API) ApplyMealPreset(c *gin.Context) {
	entries, err := a.diary.ApplyMealPresetToToday(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
