package ordering

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/events"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/gin-gonic/gin"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// RequestIDKey is the gin context key the request id middleware writes.
const RequestIDKey = "request_id"

var ErrMalformedBody = errors.New("malformed order body")

type Handler struct {
	ids       *IDGenerator
	publisher events.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewHandler(ids *IDGenerator, publisher events.Publisher, log *logger.Logger) *Handler {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Handler{
		ids:       ids,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

// PlaceOrder handles POST /api/place-order. The body is not validated: items,
// userId and userName are echoed back exactly as sent.
func (h *Handler) PlaceOrder(c *gin.Context) {
	requestID := c.GetString(RequestIDKey)

	resp, err := h.confirm(c.Request.Body)
	if err != nil {
		h.logger.Error("order_failed", requestID, "Failed to parse order body", err, nil)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.OrderErrorMessage})
		return
	}

	h.logger.Info("order_placed", requestID, "Order confirmation issued", map[string]any{
		"order_id": resp.OrderID,
	})

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := h.publisher.Publish(ctx, events.NewOrderPlaced(requestID, resp)); err != nil {
		h.logger.Error("order_event_failed", requestID, "Failed to publish order event", err, map[string]any{
			"order_id": resp.OrderID,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// confirm turns a raw request body into a fabricated confirmation. It fails
// only when the body is not a JSON document or is JSON null.
func (h *Handler) confirm(body io.Reader) (models.OrderResponse, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return models.OrderResponse{}, err
	}
	fields, err := extract(data)
	if err != nil {
		return models.OrderResponse{}, err
	}
	return models.OrderResponse{
		Status:    models.OrderStatusPlaced,
		OrderID:   h.ids.Next(),
		Items:     fields["items"],
		UserID:    fields["userId"],
		UserName:  fields["userName"],
		Timestamp: h.now().UTC().Format(TimestampLayout),
	}, nil
}

// extract returns the top-level members of a JSON object. Any other valid
// JSON value yields no members; null and invalid JSON are errors.
func extract(data []byte) (map[string]json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedBody
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		return nil, ErrMalformedBody
	case trimmed[0] != '{':
		return map[string]json.RawMessage{}, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
