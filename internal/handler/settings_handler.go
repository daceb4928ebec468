package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type settingsPayload struct {
	Goal        flexNumber `json:"goal"`
	ProteinGoal flexNumber `json:"proteinGoal"`
}

type resetPayload struct {
	Confirm bool `json:"confirm"`
}

// GetSettings 返回每日目标
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.diary.GetSettings(c.Request.Context())
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings 覆盖每日目标，缺省值按 0（未设置）处理
func (a *API) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "invalid settings payload") {
		return
	}

	settings, err := a.diary.UpdateSettings(c.Request.Context(), payload.Goal.Or(0), payload.ProteinGoal.Or(0))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// ResetAll 清空全部数据，需要 {"confirm": true}
func (a *API) ResetAll(c *gin.Context) {
	var payload resetPayload
	if !bindJSON(c, &payload, "invalid reset payload") {
		return
	}
	if !payload.Confirm {
		respondError(c, http.StatusBadRequest, "reset requires confirmation")
		return
	}

	if err := a.diary.ResetAll(c.Request.Context()); err != nil {
		handleDiaryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
