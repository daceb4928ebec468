package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentBlob 以键值形式保存整份文档，Value 为 JSON。
type DocumentBlob struct {
	gorm.Model
	Key   string         `gorm:"size:100;uniqueIndex;not null"`
	Value datatypes.JSON `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (DocumentBlob) TableName() string {
	return "documents"
}

// DefaultDocumentKey 是未配置时使用的文档键。
const DefaultDocumentKey = "platelog_v1"
