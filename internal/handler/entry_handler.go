package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type foodEntryPayload struct {
	FoodID   string     `json:"foodId"`
	Servings flexNumber `json:"servings"`
	DateKey  string     `json:"dateKey"`
}

type quickEntryPayload struct {
	Calories flexNumber `json:"calories"`
	DateKey  string     `json:"dateKey"`
}

// LogFoodEntry 记录一次食物摄入
func (a *API) LogFoodEntry(c *gin.Context) {
	var payload foodEntryPayload
	if !bindJSON(c, &payload, "invalid entry payload") {
		return
	}

	foodID := strings.TrimSpace(payload.FoodID)
	if foodID == "" {
		respondError(c, http.StatusBadRequest, "foodId is required")
		return
	}

	entry, err := a.diary.LogFoodEntry(c.Request.Context(), foodID, payload.Servings.Or(1), strings.TrimSpace(payload.DateKey))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// LogQuickEntry 记录手动热量
func (a *API) LogQuickEntry(c *gin.Context) {
	var payload quickEntryPayload
	if !bindJSON(c, &payload, "invalid entry payload") {
		return
	}

	entry, err := a.diary.LogQuickEntry(c.Request.Context(), payload.Calories.Or(0), strings.TrimSpace(payload.DateKey))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// DeleteEntry 删除记录
func (a *API) DeleteEntry(c *gin.Context) {
	if err := a.diary.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		handleDiaryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
