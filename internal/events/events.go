package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/logger"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
)

const EventOrderPlaced = "order.placed"

// OrderPlaced mirrors a fabricated confirmation. Nothing consumes it to
// change an order; it exists for downstream analytics only.
type OrderPlaced struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	OrderID   string          `json:"orderId"`
	Items     json.RawMessage `json:"items,omitempty"`
	UserID    json.RawMessage `json:"userId,omitempty"`
	UserName  json.RawMessage `json:"userName,omitempty"`
	Timestamp string          `json:"timestamp"`
}

func NewOrderPlaced(requestID string, resp models.OrderResponse) OrderPlaced {
	return OrderPlaced{
		Type:      EventOrderPlaced,
		RequestID: requestID,
		OrderID:   resp.OrderID,
		Items:     resp.Items,
		UserID:    resp.UserID,
		UserName:  resp.UserName,
		Timestamp: resp.Timestamp,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event OrderPlaced) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, OrderPlaced) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// LogPublisher writes each event to the structured log.
type LogPublisher struct {
	log *logger.Logger
}

func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event OrderPlaced) error {
	p.log.Info("order_event", event.RequestID, "order placed", map[string]any{
		"order_id":  event.OrderID,
		"timestamp": event.Timestamp,
	})
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// New builds the publisher selected by cfg.Sink.
func New(cfg models.EventsConfig, log *logger.Logger) (Publisher, error) {
	switch cfg.Sink {
	case "", models.EventSinkNone:
		return NoopPublisher{}, nil
	case models.EventSinkLog:
		return NewLogPublisher(log), nil
	case models.EventSinkKafka:
		producer, err := NewSaramaProducer(cfg.Kafka.Brokers)
		if err != nil {
			return nil, err
		}
		return NewKafkaPublisher(producer, cfg.Topic), nil
	case models.EventSinkRabbitMQ:
		return NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
	default:
		return nil, fmt.Errorf("unsupported event sink: %s", cfg.Sink)
	}
}
