package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/platelog/internal/model"
)

type foodPayload struct {
	Name               string     `json:"name"`
	CaloriesPerServing flexNumber `json:"caloriesPerServing"`
	ProteinPerServing  flexNumber `json:"proteinPerServing"`
	CarbsPerServing    flexNumber `json:"carbsPerServing"`
	ServingLabel       string     `json:"servingLabel"`
}

func (p foodPayload) draft() model.FoodDraft {
	return model.FoodDraft{
		Name:               p.Name,
		CaloriesPerServing: p.CaloriesPerServing.Or(0),
		ProteinPerServing:  p.ProteinPerServing.Or(0),
		CarbsPerServing:    p.CarbsPerServing.Or(0),
		ServingLabel:       p.ServingLabel,
	}
}

// ListFoods 返回食物列表，支持 q 参数按名称过滤
func (a *API) ListFoods(c *gin.Context) {
	foods, err := a.diary.ListFoods(c.Request.Context(), c.Query("q"))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// CreateFood 新建食物
func (a *API) CreateFood(c *gin.Context) {
	var payload foodPayload
	if !bindJSON(c, &payload, "invalid food payload") {
		return
	}

	food, err := a.diary.CreateFood(c.Request.Context(), payload.draft())
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"food": food})
}

// DeleteFood 删除食物，已有记录保留
func (a *API) DeleteFood(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := a.diary.DeleteFood(c.Request.Context(), id); err != nil {
		handleDiaryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
