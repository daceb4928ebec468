package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFoodNameRequired 食物名称为空
	ErrFoodNameRequired = model.ErrFoodNameRequired
	// ErrMealPresetNameRequired 套餐名称为空
	ErrMealPresetNameRequired = model.ErrMealPresetNameRequired
	// ErrInvalidDateKey 日期格式不合法
	ErrInvalidDateKey = model.ErrInvalidDateKey
	// ErrInvalidQuickCalories 快速记录的热量必须为有限正数
	ErrInvalidQuickCalories = errors.New("quick calories must be a finite positive number")
	// ErrNoFoods 尚未创建任何食物时无法向套餐添加条目
	ErrNoFoods = errors.New("add a food first")
	// ErrMealPresetNotFound 套餐不存在
	ErrMealPresetNotFound = errors.New("meal preset not found")
)

// DocumentStore 抽象整份文档的读写。
type DocumentStore interface {
	Load(ctx context.Context) (model.Document, error)
	Save(ctx context.Context, doc model.Document) error
	Reset(ctx context.Context) error
}

// Diary 负责全部读写操作。
// 每次修改都在同一把锁内完成 load -> 修改 -> save，
// 多个请求并发修改时不会互相覆盖。读取不加锁，拿到的是某一时刻的快照。
type Diary struct {
	store  DocumentStore
	lookup ProductSource
	log    logrus.FieldLogger
	now    func() time.Time
	newID  func() string

	mu sync.Mutex
}

// Option 配置 Diary
type Option func(*Diary)

// WithClock 替换时钟，主要用于测试
func WithClock(now func() time.Time) Option {
	return func(d *Diary) {
		if now != nil {
			d.now = now
		}
	}
}

// WithIDGenerator 替换标识生成器
func WithIDGenerator(newID func() string) Option {
	return func(d *Diary) {
		if newID != nil {
			d.newID = newID
		}
	}
}

// WithLogger 指定日志输出
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Diary) {
		if log != nil {
			d.log = log
		}
	}
}

// WithProductSource 配置条码查询使用的外部数据源
func WithProductSource(source ProductSource) Option {
	return func(d *Diary) {
		d.lookup = source
	}
}

// NewDiary 构造 Diary
func NewDiary(store DocumentStore, opts ...Option) *Diary {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	d := &Diary{
		store: store,
		log:   silent,
		now:   time.Now,
		newID: model.NewID,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Document 读取当前文档快照
func (d *Diary) Document(ctx context.Context) (model.Document, error) {
	return d.store.Load(ctx)
}

// Today 返回当前本地日期的 dateKey
func (d *Diary) Today() string {
	return model.DateKeyOf(d.now())
}

func (d *Diary) resolveDateKey(raw string) (string, error) {
	if raw == "" {
		return d.Today(), nil
	}
	return model.ParseDateKey(raw)
}

// mutate 串行执行一次读-改-写。apply 返回 false 表示无变更，此时不写回。
// apply 或保存失败时本次修改被丢弃，已持久化的数据保持不变。
func (d *Diary) mutate(ctx context.Context, op string, fields logrus.Fields, apply func(doc *model.Document) (bool, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := d.store.Load(ctx)
	if err != nil {
		return err
	}

	changed, err := apply(&doc)
	if err != nil {
		return err
	}
	if !changed {
		d.log.WithFields(fields).WithField("op", op).Debug("no change")
		return nil
	}

	if err := d.store.Save(ctx, doc); err != nil {
		d.log.WithFields(fields).WithField("op", op).WithError(err).Error("persist document failed")
		return err
	}

	d.log.WithFields(fields).WithField("op", op).Info("document updated")
	return nil
}
