package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LookupBarcode 查询条码并返回预填的食物草稿，不保存
func (a *API) LookupBarcode(c *gin.Context) {
	draft, err := a.diary.LookupProduct(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ImportBarcode 查询条码并保存为食物
func (a *API) ImportBarcode(c *gin.Context) {
	food, err := a.diary.ImportProduct(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"food": food})
}
