package service

import "context"

// SummarizeDay 读取文档并汇总某天，dateKey 为空时为今天
func (d *Diary) SummarizeDay(ctx context.Context, dateKey string) (DaySummary, error) {
	key, err := d.resolveDateKey(dateKey)
	if err != nil {
		return DaySummary{}, err
	}
	doc, err := d.store.Load(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	return SummarizeDay(doc, key), nil
}

// History 读取文档并返回每日汇总
func (d *Diary) History(ctx context.Context) ([]DayTotals, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return History(doc), nil
}
