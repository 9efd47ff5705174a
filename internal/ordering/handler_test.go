package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/events"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/gin-gonic/gin"
)

type recordingPublisher struct {
	events []events.OrderPlaced
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.OrderPlaced) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newTestRouter(pub events.Publisher) (*gin.Engine, *Handler) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewSeededIDGenerator(1), pub, logger.Discard())
	h.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 123e6, time.FixedZone("IST", 5*3600+1800)) }
	r := gin.New()
	r.POST("/api/place-order", h.PlaceOrder)
	return r, h
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/place-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceOrder_EchoesPayload(t *testing.T) {
	r, _ := newTestRouter(nil)
	body := `{"items":[{"id":1,"name":"Veg Sandwich","price":40,"rating":4.5}],"userId":"u1","userName":"Alice"}`

	w := post(r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got models.OrderConfirmation
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if got.Status != "Order placed successfully!" {
		t.Errorf("unexpected status %q", got.Status)
	}
	if !base36ID.MatchString(got.OrderID) {
		t.Errorf("orderId %q is not six base-36 characters", got.OrderID)
	}
	want := []models.MenuItem{{ID: 1, Name: "Veg Sandwich", Price: 40, Rating: 4.5}}
	if len(got.Items) != 1 || got.Items[0] != want[0] {
		t.Errorf("items not echoed: %+v", got.Items)
	}
	if got.UserID != "u1" || got.UserName != "Alice" {
		t.Errorf("identity not echoed: %q %q", got.UserID, got.UserName)
	}
	if got.Timestamp != "2026-10-16T04:00:00.123Z" {
		t.Errorf("unexpected timestamp %q", got.Timestamp)
	}
	if _, err := time.Parse(time.RFC3339Nano, got.Timestamp); err != nil {
		t.Errorf("timestamp is not ISO-8601: %v", err)
	}
}

func TestPlaceOrder_FieldOrder(t *testing.T) {
	r, _ := newTestRouter(nil)
	w := post(r, `{"userName":"Alice","userId":"u1","items":[]}`)

	body := w.Body.String()
	order := []string{`"status"`, `"orderId"`, `"items"`, `"userId"`, `"userName"`, `"timestamp"`}
	last := -1
	for _, key := range order {
		i := strings.Index(body, key)
		if i <= last {
			t.Fatalf("key %s out of order in %s", key, body)
		}
		last = i
	}
}

func TestPlaceOrder_NoValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string // raw JSON expected per echoed key; "" means absent
	}{
		{
			name: "empty object",
			body: `{}`,
			want: map[string]string{"items": "", "userId": "", "userName": ""},
		},
		{
			name: "wrong types are echoed as-is",
			body: `{"items":"lots","userId":42,"userName":null,"extra":true}`,
			want: map[string]string{"items": `"lots"`, "userId": "42", "userName": "null"},
		},
		{
			name: "non-object JSON",
			body: `[1,2,3]`,
			want: map[string]string{"items": "", "userId": "", "userName": ""},
		},
		{
			name: "empty cart",
			body: `{"items":[],"userId":"u9","userName":"Zed"}`,
			want: map[string]string{"items": "[]", "userId": `"u9"`, "userName": `"Zed"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(nil)
			w := post(r, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var got map[string]json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if _, ok := got["extra"]; ok {
				t.Error("unknown fields must not be echoed")
			}
			for key, raw := range tt.want {
				v, ok := got[key]
				if raw == "" {
					if ok {
						t.Errorf("expected %s to be absent, got %s", key, v)
					}
					continue
				}
				if string(v) != raw {
					t.Errorf("%s = %s, want %s", key, v, raw)
				}
			}
		})
	}
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	for _, body := range []string{`{"items": [`, ``, `null`, `not json`, `{"a":1} trailing`} {
		t.Run(body, func(t *testing.T) {
			r, _ := newTestRouter(nil)
			w := post(r, body)
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			var got map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if len(got) != 1 || got["error"] != "Failed to place order" {
				t.Errorf("unexpected error body %v", got)
			}
		})
	}
}

func TestPlaceOrder_PublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	r, _ := newTestRouter(pub)

	w := post(r, `{"items":[],"userId":"u1","userName":"Alice"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected one event, got %d", len(pub.events))
	}
	var resp models.OrderConfirmation
	json.Unmarshal(w.Body.Bytes(), &resp)
	if pub.events[0].OrderID != resp.OrderID {
		t.Errorf("event order id %q != response %q", pub.events[0].OrderID, resp.OrderID)
	}
}

func TestPlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	r, _ := newTestRouter(pub)

	if w := post(r, `{"items":[]}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite publish failure, got %d", w.Code)
	}
}

func TestPlaceOrder_MalformedBodyPublishesNothing(t *testing.T) {
	pub := &recordingPublisher{}
	r, _ := newTestRouter(pub)

	post(r, `{`)
	if len(pub.events) != 0 {
		t.Fatalf("expected no events, got %d", len(pub.events))
	}
}
