package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/platelog/internal/model"
	"github.com/sirupsen/logrus"
)

const (
	defaultOpenFoodFactsBaseURL = "https://world.openfoodfacts.org"
	maxSnippetRunes             = 200
)

var (
	// ErrBarcodeRequired 条码为空
	ErrBarcodeRequired = errors.New("barcode is required")
	// ErrProductNotFound 外部数据源中没有该商品
	ErrProductNotFound = errors.New("product not found")
	// ErrLookupFailed 外部查询暂时失败（网络、状态码或响应格式），可重试
	ErrLookupFailed = errors.New("product lookup failed")
)

// ProductSource 按条码查询商品
type ProductSource interface {
	Lookup(ctx context.Context, barcode string) (ExternalProduct, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenFoodFactsClient 调用 Open Food Facts 的 v0 商品接口
type OpenFoodFactsClient struct {
	http    httpDoer
	baseURL string
}

type openFoodFactsResponse struct {
	Status  int              `json:"status"`
	Product *ExternalProduct `json:"product"`
}

// NewOpenFoodFactsClient 构造客户端，baseURL 为空时使用官方地址
func NewOpenFoodFactsClient(baseURL string, timeout time.Duration) *OpenFoodFactsClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &OpenFoodFactsClient{http: &http.Client{Timeout: timeout}}
	c.SetBaseURL(baseURL)
	return c
}

// SetHTTPClient 替换 HTTP 客户端，主要面向测试场景。
func (c *OpenFoodFactsClient) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	c.http = client
}

// SetBaseURL 覆盖接口基础地址
func (c *OpenFoodFactsClient) SetBaseURL(base string) {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
	if trimmed == "" {
		trimmed = defaultOpenFoodFactsBaseURL
	}
	c.baseURL = trimmed
}

// Lookup 查询条码对应的商品。
// status != 1 或没有 product 时返回 ErrProductNotFound，其余失败包装为 ErrLookupFailed。
func (c *OpenFoodFactsClient) Lookup(ctx context.Context, barcode string) (ExternalProduct, error) {
	code := strings.TrimSpace(barcode)
	if code == "" {
		return ExternalProduct{}, ErrBarcodeRequired
	}

	endpoint := c.baseURL + "/api/v0/product/" + url.PathEscape(code) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ExternalProduct{}, fmt.Errorf("%w: build request: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("User-Agent", "platelog/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return ExternalProduct{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return ExternalProduct{}, fmt.Errorf("%w: read response: %w", ErrLookupFailed, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ExternalProduct{}, ErrProductNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return ExternalProduct{}, fmt.Errorf("%w: %s: %s", ErrLookupFailed, resp.Status, responseSnippet(body))
	}

	var payload openFoodFactsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ExternalProduct{}, fmt.Errorf("%w: decode response: %w: %s", ErrLookupFailed, err, responseSnippet(body))
	}
	if payload.Status != 1 || payload.Product == nil {
		return ExternalProduct{}, ErrProductNotFound
	}

	return *payload.Product, nil
}

// responseSnippet 截取响应体开头用于错误信息，便于排查上游返回的内容。
func responseSnippet(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "<empty>"
	}
	if utf8.RuneCountInString(trimmed) > maxSnippetRunes {
		return string([]rune(trimmed)[:maxSnippetRunes]) + "…(truncated)"
	}
	return trimmed
}

// LookupProduct 查询条码并转换为食物草稿，不写入文档
func (d *Diary) LookupProduct(ctx context.Context, barcode string) (model.FoodDraft, error) {
	if d.lookup == nil {
		return model.FoodDraft{}, fmt.Errorf("%w: no product source configured", ErrLookupFailed)
	}

	product, err := d.lookup.Lookup(ctx, barcode)
	if err != nil {
		d.log.WithFields(logrus.Fields{"barcode": barcode}).WithError(err).Warn("product lookup failed")
		return model.FoodDraft{}, err
	}
	return MapExternalProduct(product), nil
}

// ImportProduct 查询条码并按普通 CreateFood 流程保存。
// 请求在保存前被取消时不写入任何数据。
func (d *Diary) ImportProduct(ctx context.Context, barcode string) (model.Food, error) {
	draft, err := d.LookupProduct(ctx, barcode)
	if err != nil {
		return model.Food{}, err
	}
	return d.CreateFood(ctx, draft)
}
