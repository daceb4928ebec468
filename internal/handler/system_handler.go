package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 检查数据库连接
func (a *API) Health(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ExportDocument 返回完整文档
func (a *API) ExportDocument(c *gin.Context) {
	doc, err := a.diary.Document(c.Request.Context())
	if err != nil {
		handleDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
