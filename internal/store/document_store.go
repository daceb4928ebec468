package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/platelog/internal/db"
	"github.com/platelog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentStore 将整份文档作为单个键值记录读写。
// 不做局部写入，也不加锁；串行化由调用方负责。
type DocumentStore struct {
	db  *gorm.DB
	key string
}

// NewDocumentStore 构造 DocumentStore，key 为空时使用默认键。
func NewDocumentStore(gdb *gorm.DB, key string) *DocumentStore {
	key = strings.TrimSpace(key)
	if key == "" {
		key = db.DefaultDocumentKey
	}
	return &DocumentStore{db: gdb, key: key}
}

// Key 返回文档键
func (s *DocumentStore) Key() string {
	return s.key
}

// Load 读取文档；记录不存在或值为空时返回默认文档。
func (s *DocumentStore) Load(ctx context.Context) (model.Document, error) {
	var blob db.DocumentBlob
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.NewDocument(), nil
		}
		return model.Document{}, fmt.Errorf("load document: %w", err)
	}

	raw := bytes.TrimSpace(blob.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return model.NewDocument(), nil
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Document{}, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()

	return doc, nil
}

// Save 用整份文档覆盖已保存的值。
func (s *DocumentStore) Save(ctx context.Context, doc model.Document) error {
	doc.Normalize()

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	blob := db.DocumentBlob{Key: s.key, Value: payload}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      string(payload),
			"deleted_at": nil,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&blob).Error; err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	return nil
}

// Reset 删除已保存的文档，之后的 Load 返回默认文档。
func (s *DocumentStore) Reset(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Unscoped().
		Where("key = ?", s.key).
		Delete(&db.DocumentBlob{}).Error; err != nil {
		return fmt.Errorf("reset document: %w", err)
	}
	return nil
}
