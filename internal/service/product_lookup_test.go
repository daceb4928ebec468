package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/platelog/internal/model"
)

func newLookupServer(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenFoodFactsClient(srv.URL+"/", time.Second)
}

func TestOpenFoodFactsClientLookup(t *testing.T) {
	client := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/737628064502.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Rice noodles","serving_size":"85 g","nutriments":{"energy-kcal_100g":"364,8","proteins_100g":5.9}}}`))
	})

	product, err := client.Lookup(context.Background(), " 737628064502 ")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if product.ProductName != "Rice noodles" || product.ServingSize != "85 g" {
		t.Fatalf("unexpected product: %+v", product)
	}

	draft := MapExternalProduct(product)
	if draft.CaloriesPerServing != 365 || draft.ProteinPerServing != 5.9 {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestOpenFoodFactsClientNotFound(t *testing.T) {
	for name, body := range map[string]string{
		"status zero":     `{"status":0,"status_verbose":"product not found"}`,
		"missing product": `{"status":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			if _, err := client.Lookup(context.Background(), "123"); !errors.Is(err, ErrProductNotFound) {
				t.Fatalf("expected ErrProductNotFound, got %v", err)
			}
		})
	}

	client := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	if _, err := client.Lookup(context.Background(), "123"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for 404, got %v", err)
	}
}

func TestOpenFoodFactsClientFailures(t *testing.T) {
	serverError := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	})
	if _, err := serverError.Lookup(context.Background(), "123"); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed for 503, got %v", err)
	}

	malformed := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>rate limited</html>`))
	})
	if _, err := malformed.Lookup(context.Background(), "123"); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed for malformed body, got %v", err)
	}

	offline := NewOpenFoodFactsClient("", time.Second)
	offline.SetHTTPClient(failingHTTPClient{err: errors.New("connection refused")})
	if _, err := offline.Lookup(context.Background(), "123"); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed for transport error, got %v", err)
	}

	if _, err := offline.Lookup(context.Background(), "  "); !errors.Is(err, ErrBarcodeRequired) {
		t.Fatalf("expected ErrBarcodeRequired, got %v", err)
	}
}

func TestOpenFoodFactsClientKeepsContextErrors(t *testing.T) {
	client := NewOpenFoodFactsClient("http://example.test", time.Second)

	for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
		client.SetHTTPClient(failingHTTPClient{err: &url.Error{Op: "Get", URL: "http://example.test", Err: cause}})
		_, err := client.Lookup(context.Background(), "123")
		if !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected ErrLookupFailed, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected %v to be preserved, got %v", cause, err)
		}
	}
}

func TestOpenFoodFactsClientDefaultBaseURL(t *testing.T) {
	client := NewOpenFoodFactsClient("  ", 0)
	if client.baseURL != defaultOpenFoodFactsBaseURL {
		t.Fatalf("unexpected base url %s", client.baseURL)
	}
}

type failingHTTPClient struct {
	err error
}

func (f failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, f.err
}

type stubProductSource struct {
	product ExternalProduct
	err     error
	calls   int
}

func (s *stubProductSource) Lookup(_ context.Context, barcode string) (ExternalProduct, error) {
	s.calls++
	if barcode == "" {
		return ExternalProduct{}, ErrBarcodeRequired
	}
	return s.product, s.err
}

func TestDiaryImportProduct(t *testing.T) {
	source := &stubProductSource{product: ExternalProduct{
		ProductName: "Skyr",
		ServingSize: "150 g",
		Nutriments:  map[string]any{"energy-kcal_100g": 63.0, "proteins_100g": "11", "carbohydrates_100g": "3,9"},
	}}
	d := newTestDiary(t, WithProductSource(source))
	ctx := context.Background()

	draft, err := d.LookupProduct(ctx, "4006040000000")
	if err != nil {
		t.Fatalf("LookupProduct returned error: %v", err)
	}
	doc, err := d.Document(ctx)
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if len(doc.Foods) != 0 {
		t.Fatalf("expected lookup to leave foods unchanged")
	}
	if draft.Name != "Skyr" || draft.ServingLabel != "100g (serving: 150 g)" {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	food, err := d.ImportProduct(ctx, "4006040000000")
	if err != nil {
		t.Fatalf("ImportProduct returned error: %v", err)
	}
	want := model.Food{ID: food.ID, Name: "Skyr", CaloriesPerServing: 63, ProteinPerServing: 11, CarbsPerServing: 3.9, ServingLabel: "100g (serving: 150 g)"}
	if food != want {
		t.Fatalf("unexpected food: %+v", food)
	}

	foods, err := d.ListFoods(ctx, "")
	if err != nil {
		t.Fatalf("ListFoods returned error: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("expected imported food to be stored, got %d", len(foods))
	}
}

func TestDiaryImportProductFailures(t *testing.T) {
	ctx := context.Background()

	notFound := newTestDiary(t, WithProductSource(&stubProductSource{err: ErrProductNotFound}))
	if _, err := notFound.ImportProduct(ctx, "1"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	doc, err := notFound.Document(ctx)
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if len(doc.Foods) != 0 {
		t.Fatalf("expected no foods after failed import")
	}

	unconfigured := NewDiary(newMemoryStore())
	if _, err := unconfigured.LookupProduct(ctx, "1"); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed without a source, got %v", err)
	}

	source := &stubProductSource{product: ExternalProduct{ProductName: "Late"}}
	mem := newMemoryStore()
	canceled := NewDiary(mem, WithProductSource(source))
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := canceled.ImportProduct(cctx, "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mem.saves != 0 {
		t.Fatalf("expected canceled import to skip saving")
	}
}

func TestResponseSnippet(t *testing.T) {
	if got := responseSnippet([]byte("  ")); got != "<empty>" {
		t.Fatalf("unexpected snippet for empty body: %q", got)
	}

	long := strings.Repeat("é", maxSnippetRunes+10)
	got := responseSnippet([]byte(long))
	if !strings.HasSuffix(got, "…(truncated)") || utf8.RuneCountInString(got) != maxSnippetRunes+len([]rune("…(truncated)")) {
		t.Fatalf("unexpected truncated snippet length %d", utf8.RuneCountInString(got))
	}
}
