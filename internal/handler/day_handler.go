package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetToday 返回今天的汇总
func (a *API) GetToday(c *gin.Context) {
	a.respondDay(c, "")
}

// GetDay 返回指定日期（YYYY-MM-DD）的汇总
func (a *API) GetDay(c *gin.Context) {
	a.respondDay(c, c.Param("date"))
}

func (a *API) respondDay(c *gin.Context, dateKey string) {
	summary, err := a.diary.SummarizeDay(c.Request.Context(), dateKey)
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetHistory 返回按日期倒序的每日合计
func (a *API) GetHistory(c *gin.Context) {
	days, err := a.diary.History(c.Request.Context())
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
