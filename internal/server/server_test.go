package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &models.Config{Server: models.ServerConfig{Port: 0, Mode: "test"}}
	return New(cfg, catalog.Default(), nil, logger.Discard())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, HealthPath, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"OK"}` {
		t.Errorf("unexpected body %s", got)
	}
}

func TestPlaceOrder_Routes(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, PlaceOrderPath, `{"items":[],"userId":"u1","userName":"Alice"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}

	w = do(t, s, http.MethodPost, PlaceOrderPath, `{`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestPlaceOrder_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		if w := do(t, s, method, PlaceOrderPath, ""); w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", method, w.Code)
		}
	}
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestMenu(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   int
		category string
		ids      []int
	}{
		{"default category", MenuPath, http.StatusOK, models.CategorySnacks, []int{1, 2, 3}},
		{"category", MenuPath + "?category=beverages", http.StatusOK, models.CategoryBeverages, []int{4, 5, 6}},
		{"query case-insensitive", MenuPath + "?category=meals&q=PAS", http.StatusOK, models.CategoryMeals, []int{8}},
		{"no match", MenuPath + "?category=snacks&q=pizza", http.StatusOK, models.CategorySnacks, []int{}},
		{"unknown category", MenuPath + "?category=desserts", http.StatusNotFound, "", nil},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.path, "")
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.status != http.StatusOK {
				return
			}
			var resp models.MenuResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Category != tt.category {
				t.Errorf("category = %q, want %q", resp.Category, tt.category)
			}
			if resp.Items == nil {
				t.Fatal("items must be an array, not null")
			}
			if len(resp.Items) != len(tt.ids) {
				t.Fatalf("got %d items, want %d", len(resp.Items), len(tt.ids))
			}
			for i, id := range tt.ids {
				if resp.Items[i].ID != id {
					t.Errorf("item %d id = %d, want %d", i, resp.Items[i].ID, id)
				}
			}
		})
	}
}

func TestCategories(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, CategoriesPath, "")
	var resp models.CategoriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{models.CategorySnacks, models.CategoryBeverages, models.CategoryMeals}
	if strings.Join(resp.Categories, ",") != strings.Join(want, ",") {
		t.Errorf("categories = %v, want %v", resp.Categories, want)
	}
	if resp.Default != models.CategorySnacks {
		t.Errorf("default = %q", resp.Default)
	}
}

func TestMetrics_CountsOrders(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, PlaceOrderPath, `{}`)
	do(t, s, http.MethodPost, PlaceOrderPath, `{}`)
	do(t, s, http.MethodPost, PlaceOrderPath, `nope`)

	w := do(t, s, http.MethodGet, MetricsPath, "")
	body := w.Body.String()
	if !strings.Contains(body, "campus_delivery_orders_confirmed_total 2") {
		t.Errorf("expected two confirmed orders in metrics output:\n%s", body)
	}
	if !strings.Contains(body, `campus_delivery_http_requests_total{handler="/api/place-order",status="500"} 1`) {
		t.Error("expected one failed place-order request")
	}
}
