package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/server"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &models.Config{Server: models.ServerConfig{Mode: "test"}}
	srv := httptest.NewServer(server.New(cfg, catalog.Default(), nil, logger.Discard()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestPlaceOrder_AgainstServer(t *testing.T) {
	api := newAPI(t)
	c := New(api.URL+"/", 0)

	req := models.OrderRequest{
		Items:    []models.MenuItem{{ID: 1, Name: "Veg Sandwich", Price: 40, Rating: 4.5}},
		UserID:   "u1",
		UserName: "Alice",
	}
	conf, err := c.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Status != models.OrderStatusPlaced || len(conf.OrderID) != models.OrderIDLength {
		t.Errorf("unexpected confirmation %+v", conf)
	}
	if len(conf.Items) != 1 || conf.Items[0] != req.Items[0] || conf.UserID != "u1" || conf.UserName != "Alice" {
		t.Errorf("payload not echoed: %+v", conf)
	}
}

func TestPlaceOrder_EmptyCartSerializesAsArray(t *testing.T) {
	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"status":"ok","orderId":"abcdef"}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, 0).PlaceOrder(context.Background(), models.OrderRequest{Items: []models.MenuItem{}}); err != nil {
		t.Fatal(err)
	}
	if string(got["items"]) != "[]" {
		t.Errorf("items = %s, want []", got["items"])
	}
}

func TestPlaceOrder_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Failed to place order"}`))
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "non-200 success code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				w.Write([]byte(`accepted`))
			},
			status: http.StatusAccepted,
		},
		{
			name: "unparsable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL, 0).PlaceOrder(context.Background(), models.OrderRequest{})
			if err == nil {
				t.Fatal("expected an error")
			}
			var se *StatusError
			if tt.status == 0 {
				if errors.As(err, &se) {
					t.Errorf("parse failure reported as status error: %v", err)
				}
				return
			}
			if !errors.As(err, &se) || se.Code != tt.status {
				t.Fatalf("expected status %d, got %v", tt.status, err)
			}
		})
	}
}

func TestPlaceOrder_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, 50*time.Millisecond).PlaceOrder(context.Background(), models.OrderRequest{})
	if err == nil || !strings.Contains(err.Error(), "Client.Timeout") {
		t.Fatalf("expected a client timeout, got %v", err)
	}
}

func TestMenu(t *testing.T) {
	c := New(newAPI(t).URL, time.Second)

	resp, err := c.Menu(context.Background(), models.CategoryBeverages, "TEA")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Tea" {
		t.Errorf("unexpected items %+v", resp.Items)
	}

	_, err = c.Menu(context.Background(), "desserts", "")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}

	cats, err := c.Categories(context.Background())
	if err != nil || len(cats.Categories) != 3 {
		t.Errorf("categories = %+v, %v", cats, err)
	}
}

func TestLoadCategories(t *testing.T) {
	c := New(newAPI(t).URL, 0)
	got, err := c.LoadCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := catalog.DefaultCategories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name || len(got[i].Items) != len(want[i].Items) {
			t.Errorf("category %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
